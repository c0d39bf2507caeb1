package model

import (
	"time"

	"github.com/google/uuid"
)

// LoginCodeModel mirrors the 'login_codes' table. The unique email column
// enforces at most one pending code per address.
type LoginCodeModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	Attempts  int       `gorm:"not null;default:0"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LoginCodeModel) TableName() string {
	return "login_codes"
}
