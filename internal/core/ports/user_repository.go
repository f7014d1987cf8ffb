package ports

import (
	"context"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
)

// UserRepository defines the persistence interface for credential records.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) error
	Count(ctx context.Context) (int64, error)
}
