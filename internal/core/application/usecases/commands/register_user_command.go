package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// MinPasswordLength is the shortest password registration accepts.
const MinPasswordLength = 6

var ErrRegisterUserCommandIsNotConstructed = errors.New(
	"RegisterUserCommand must be created via NewRegisterUserCommand constructor",
)

// RegisterUserCommand creates a buyer account. Registration never creates
// admins: a requested role other than buyer is rejected, not downgraded.
//
// Example:
//
//	cmd, err := NewRegisterUserCommand(kernel.NewUUID(), "buyer@example.com", "secret1", "secret1", "")
type RegisterUserCommand struct {
	userID   kernel.UUID
	email    string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterUserCommand validates the form. confirmPassword and role may be empty.
func NewRegisterUserCommand(userID kernel.UUID, email, password, confirmPassword, role string) (RegisterUserCommand, error) {
	cmd := RegisterUserCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		userID.Validate(),
		cmd.setEmail(email),
		cmd.setPassword(password, confirmPassword),
		checkRegistrationRole(role),
	); err != nil {
		return RegisterUserCommand{}, err
	}
	cmd.userID = userID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterUserCommand) Validate() error {
	return c.guard.Validate(ErrRegisterUserCommandIsNotConstructed)
}

func (c RegisterUserCommand) UserID() kernel.UUID { return c.userID }

// Email returns the normalized email.
func (c RegisterUserCommand) Email() string { return c.email }

func (c RegisterUserCommand) Password() string { return c.password }

func (c *RegisterUserCommand) setEmail(email string) error {
	email = user.NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *RegisterUserCommand) setPassword(password, confirmPassword string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", MinPasswordLength))
	}
	if confirmPassword != "" && confirmPassword != password {
		return errs.NewValueIsInvalidErrorWithCause("confirmPassword", errors.New("passwords do not match"))
	}
	c.password = password
	return nil
}

func checkRegistrationRole(role string) error {
	if strings.TrimSpace(role) == "" {
		return nil
	}
	parsed, err := kernel.ParseRole(role)
	if err != nil {
		return err
	}
	if parsed != kernel.RoleBuyer {
		return errs.NewValueIsInvalidErrorWithCause("role", errors.New("registration creates buyer accounts only"))
	}
	return nil
}
