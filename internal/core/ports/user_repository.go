package ports

import (
	"context"

	"github.com/coursehub/pricing-api/internal/core/domain"
)

// UserRepository is the credential store consulted during login.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}
