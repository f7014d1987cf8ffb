package ports

import (
	"context"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
)

// CategoryRepository defines the persistence interface for wheel categories.
type CategoryRepository interface {
	ListByUser(ctx context.Context, userEmail string) ([]domain.Category, error)
	Create(ctx context.Context, category *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id, userEmail string) error
}

// CategoryService manages a user's wheel categories.
type CategoryService interface {
	List(ctx context.Context, userEmail string) ([]domain.Category, error)
	Add(ctx context.Context, userEmail, name string, group domain.CategoryGroup) (*domain.Category, error)
	Remove(ctx context.Context, userEmail, id string) error
	// SeedDefaults creates the standard category set for a user that has none.
	SeedDefaults(ctx context.Context, userEmail string) error
}
