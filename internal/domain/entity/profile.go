package entity

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

// handlePattern restricts handles to letters, digits, underscores and hyphens.
var handlePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidHandle reports whether the handle matches the allowed pattern.
func ValidHandle(handle string) bool {
	return handlePattern.MatchString(handle)
}

// Profile is a user's public identity: the unique handle readers see, a bio,
// optional social links and an optional avatar. Exactly one Profile exists per
// User once onboarding completes.
type Profile struct {
	ID          uuid.UUID
	UserID      uuid.UUID         // Owning user. One profile per user.
	Handle      string            // Unique slug, [a-zA-Z0-9_-]+ only.
	Bio         string
	SocialLinks map[string]string // Platform name -> URL. Known keys: twitter, github, linkedin, instagram, website.
	Avatar      *Avatar           // Nil when no avatar is set.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Avatar is a stored profile picture: the blob path inside the bucket and the
// public URL handed to clients.
type Avatar struct {
	Path string
	URL  string
}
