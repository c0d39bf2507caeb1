package service

import "context"

// CodeMailer delivers one-time sign-in codes to users.
type CodeMailer interface {
	// SendLoginCode delivers the code to the given email address.
	SendLoginCode(ctx context.Context, email, code string) error
}
