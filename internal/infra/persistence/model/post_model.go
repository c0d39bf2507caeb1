package model

import (
	"time"

	"github.com/google/uuid"
)

// PostModel mirrors the 'posts' table. AuthorID references profiles.id, not
// users.id: posts belong to the public author identity.
type PostModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index:idx_posts_author_created,priority:1"`
	Title     string    `gorm:"type:varchar(512);not null"`
	Content   string    `gorm:"type:text"`
	Published bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index:idx_posts_author_created,priority:2,sort:desc"`
	UpdatedAt time.Time

	Author *ProfileModel `gorm:"foreignKey:AuthorID"`
}

// TableName explicitly sets the table name for GORM.
func (PostModel) TableName() string {
	return "posts"
}
