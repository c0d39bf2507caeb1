package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ProfileModel mirrors the 'profiles' table. Each user owns at most one
// profile, and handles are unique service-wide.
type ProfileModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID      `gorm:"type:uuid;unique;not null"`
	Handle      string         `gorm:"type:varchar(64);unique;not null"`
	Bio         string         `gorm:"type:text"`
	SocialLinks datatypes.JSON `gorm:"type:jsonb"`
	AvatarPath  string         `gorm:"type:varchar(512)"`
	AvatarURL   string         `gorm:"type:varchar(1024)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Posts []PostModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
