package service

import (
	"context"
	"strings"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/ports"
)

// CategoryService manages the slices of a user's wheel. Every operation is
// scoped to the authenticated subject; a user can never touch another user's
// categories.
type CategoryService struct {
	repo ports.CategoryRepository
}

func NewCategoryService(repo ports.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) List(ctx context.Context, userEmail string) ([]domain.Category, error) {
	return s.repo.ListByUser(ctx, userEmail)
}

func (s *CategoryService) Add(ctx context.Context, userEmail, name string, group domain.CategoryGroup) (*domain.Category, error) {
	if strings.TrimSpace(name) == "" || !group.Valid() {
		return nil, domain.ErrInvalidCategory
	}
	return s.repo.Create(ctx, &domain.Category{
		Name:      strings.TrimSpace(name),
		Group:     group,
		UserEmail: userEmail,
	})
}

func (s *CategoryService) Remove(ctx context.Context, userEmail, id string) error {
	return s.repo.Delete(ctx, id, userEmail)
}

// SeedDefaults creates the standard category set for users that have none
// yet. Called on registration and for seeded demo accounts.
func (s *CategoryService) SeedDefaults(ctx context.Context, userEmail string) error {
	existing, err := s.repo.ListByUser(ctx, userEmail)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}
	for _, category := range domain.DefaultCategories(userEmail) {
		if _, err := s.repo.Create(ctx, &category); err != nil {
			return err
		}
	}
	return nil
}
