package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// loginCodeRepository implements the domain's LoginCodeRepository interface using GORM.
type loginCodeRepository struct {
	db *gorm.DB
}

// NewLoginCodeRepository is the constructor for loginCodeRepository.
func NewLoginCodeRepository(db *gorm.DB) repository.LoginCodeRepository {
	return &loginCodeRepository{db: db}
}

// Replace upserts the pending code for an email. The unique email column
// plus ON CONFLICT keeps at most one pending code per address, with
// attempts reset for the fresh code.
func (repo *loginCodeRepository) Replace(ctx context.Context, code *entity.LoginCode) error {
	codeM := &model.LoginCodeModel{
		ID:        code.ID,
		Email:     code.Email,
		CodeHash:  code.CodeHash,
		Attempts:  0,
		ExpiresAt: code.ExpiresAt,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoUpdates: clause.AssignmentColumns([]string{"code_hash", "attempts", "expires_at", "created_at"}),
		}).
		Create(codeM).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store login code")
	}

	code.ID = codeM.ID
	code.Attempts = 0
	code.CreatedAt = codeM.CreatedAt

	return nil
}

// FindByEmail retrieves the pending code for an email.
func (repo *loginCodeRepository) FindByEmail(ctx context.Context, email string) (*entity.LoginCode, error) {
	var codeM model.LoginCodeModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&codeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLoginCodeNotFound
		}

		return nil, errors.Wrap(err, "failed to find login code")
	}

	return &entity.LoginCode{
		ID:        codeM.ID,
		Email:     codeM.Email,
		CodeHash:  codeM.CodeHash,
		Attempts:  codeM.Attempts,
		ExpiresAt: codeM.ExpiresAt,
		CreatedAt: codeM.CreatedAt,
	}, nil
}

// Update persists attempt-count changes.
func (repo *loginCodeRepository) Update(ctx context.Context, code *entity.LoginCode) error {
	err := repo.db.WithContext(ctx).
		Model(&model.LoginCodeModel{}).
		Where("email = ?", code.Email).
		Update("attempts", code.Attempts).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update login code")
	}

	return nil
}

// DeleteByEmail consumes the pending code for an email. Deleting a missing
// code is not an error.
func (repo *loginCodeRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := repo.db.WithContext(ctx).
		Delete(&model.LoginCodeModel{}, "email = ?", email).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete login code")
	}

	return nil
}
