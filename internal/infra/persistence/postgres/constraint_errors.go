package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking.

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// The postgres driver surfaces 23505 without gorm's translation when
	// SkipDefaultTransaction is set on some paths.
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "23505")
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// uniqueViolationOn reports whether a unique violation mentions the given
// constraint or column name, to tell a taken handle from a duplicate user.
func uniqueViolationOn(err error, name string) bool {
	return isUniqueConstraintViolation(err) &&
		strings.Contains(strings.ToLower(err.Error()), strings.ToLower(name))
}
