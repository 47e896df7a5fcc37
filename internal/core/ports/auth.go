package ports

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

var (
	// ErrPasswordMismatch is returned by PasswordHasher.Compare for a wrong password.
	ErrPasswordMismatch = errors.New("password does not match")
	// ErrTokenInvalid is returned by TokenIssuer.Parse for a malformed, forged or expired token.
	ErrTokenInvalid = errors.New("session token is invalid")
)

// PasswordHasher turns passwords into salted hashes and checks them in constant time.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns nil on match and ErrPasswordMismatch otherwise.
	Compare(hash, password string) error
}

// TokenIssuer issues and verifies session tokens carrying an actor.
type TokenIssuer interface {
	Issue(actor kernel.Actor) (token string, expiresAt time.Time, err error)
	Parse(token string) (kernel.Actor, error)
}

// QRRenderer renders text as a PNG QR code.
type QRRenderer interface {
	RenderPNG(content string, size int) ([]byte, error)
}
