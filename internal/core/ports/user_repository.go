package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for login identities.
type UserRepository interface {
	// Add stores a new user. A taken email yields *errs.ObjectAlreadyExistsError.
	Add(ctx context.Context, aggregate *user.User) error
	Get(ctx context.Context, id kernel.UUID) (*user.User, error)
	// GetByEmail looks up a user by normalized email.
	GetByEmail(ctx context.Context, email string) (*user.User, error)
}
