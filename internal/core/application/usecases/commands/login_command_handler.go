package commands

import (
	"context"
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// ErrCredentialsRejected is returned for an unknown email or a wrong password.
// Infrastructure failures are returned as themselves so callers can tell
// "wrong credentials" from "service unavailable".
var ErrCredentialsRejected = errors.New("credentials rejected")

// UnknownAccountPasswordHash is compared against when no account matches the
// email, so an unknown email costs one bcrypt comparison like a wrong password.
// Its cost matches the default BCRYPT_COST and no password matches it.
const UnknownAccountPasswordHash = "$2a$10$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	UserID    kernel.UUID
	Email     string
	Role      kernel.Role
	Token     string
	ExpiresAt time.Time
}

// LoginCommandHandler verifies credentials and issues a session token.
type LoginCommandHandler struct {
	uowFactory UserUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
}

func NewLoginCommandHandler(uowFactory UserUoWFactory, hasher ports.PasswordHasher, tokens ports.TokenIssuer) LoginCommandHandler {
	return LoginCommandHandler{uowFactory: uowFactory, hasher: hasher, tokens: tokens}
}

func (h LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return LoginResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return LoginResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	u, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if errors.Is(err, errs.ErrObjectNotFound) {
		_ = h.hasher.Compare(UnknownAccountPasswordHash, cmd.Password())
		return LoginResult{}, ErrCredentialsRejected
	}
	if err != nil {
		return LoginResult{}, err
	}

	err = h.hasher.Compare(u.PasswordHash(), cmd.Password())
	if errors.Is(err, ports.ErrPasswordMismatch) {
		return LoginResult{}, ErrCredentialsRejected
	}
	if err != nil {
		return LoginResult{}, err
	}

	token, expiresAt, err := h.tokens.Issue(u.Actor())
	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{
		UserID:    u.ID(),
		Email:     u.Email(),
		Role:      u.Role(),
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
