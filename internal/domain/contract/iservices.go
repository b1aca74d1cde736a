package contract

import "context"

// IHasher hashes passwords (bcrypt) and opaque tokens (sha256).
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
	HashString(s string) string
	CheckHash(s, hash string) bool
}

type IUUIDGenerator interface {
	NewUUID() string
}

type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}

type IEmailService interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// ISanitizer strips markup from user supplied text.
type ISanitizer interface {
	Sanitize(s string) string
}
