// Package user contains the identity aggregate used for login and role gating.
package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrUserIsNotConstructed is returned for a User that bypassed NewUser/RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")

// User is a login identity. The email is the unique login key and is stored
// lower-cased; the password is only ever held as a salted hash.
// Users are never deleted and never change role.
type User struct {
	id           kernel.UUID
	email        string
	passwordHash string
	role         kernel.Role

	guard guard.ConstructorGuard
}

// NewUser creates a user. passwordHash must already be hashed by a ports.PasswordHasher.
func NewUser(id kernel.UUID, email, passwordHash string, role kernel.Role) (*User, error) {
	u := &User{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		role.Validate(),
	); err != nil {
		return nil, err
	}
	u.role = role

	return u, nil
}

// RestoreUser rebuilds a persisted user.
func RestoreUser(id kernel.UUID, email, passwordHash string, role kernel.Role) (*User, error) {
	return NewUser(id, email, passwordHash, role)
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID { return u.id }

func (u *User) Email() string { return u.email }

func (u *User) PasswordHash() string { return u.passwordHash }

func (u *User) Role() kernel.Role { return u.role }

// Actor returns the identity commands run under once this user is authenticated.
func (u *User) Actor() kernel.Actor {
	actor, _ := kernel.NewActor(u.id, u.role)
	return actor
}

// NormalizeEmail trims and lower-cases an email address so lookups and the
// uniqueness constraint agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email string) error {
	normalized := NormalizeEmail(email)
	if normalized == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(normalized)
	if err != nil || addr.Address != normalized {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a plain email address", email))
	}
	u.email = normalized
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}
