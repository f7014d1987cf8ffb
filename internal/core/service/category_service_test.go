package service

import (
	"context"
	"testing"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
)

type stubCategoryRepo struct {
	categories []domain.Category
	nextID     int
}

func (r *stubCategoryRepo) ListByUser(_ context.Context, userEmail string) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range r.categories {
		if c.UserEmail == userEmail {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCategoryRepo) Create(_ context.Context, category *domain.Category) (*domain.Category, error) {
	r.nextID++
	created := *category
	created.ID = string(rune('a' + r.nextID))
	r.categories = append(r.categories, created)
	return &created, nil
}

func (r *stubCategoryRepo) Delete(_ context.Context, id, userEmail string) error {
	for i, c := range r.categories {
		if c.ID == id && c.UserEmail == userEmail {
			r.categories = append(r.categories[:i], r.categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func TestCategoryService_Add_Validation(t *testing.T) {
	svc := NewCategoryService(&stubCategoryRepo{})

	if _, err := svc.Add(context.Background(), "alice@example.com", "  ", domain.GroupHealth); err != domain.ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory for blank name, got %v", err)
	}
	if _, err := svc.Add(context.Background(), "alice@example.com", "Chess", "Hobbies"); err != domain.ErrInvalidCategory {
		t.Fatalf("expected ErrInvalidCategory for unknown group, got %v", err)
	}
}

func TestCategoryService_Add_ScopedToUser(t *testing.T) {
	repo := &stubCategoryRepo{}
	svc := NewCategoryService(repo)

	created, err := svc.Add(context.Background(), "alice@example.com", " Chess ", domain.GroupOther)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if created.Name != "Chess" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.UserEmail != "alice@example.com" {
		t.Fatalf("category must be owned by the caller, got %q", created.UserEmail)
	}
}

func TestCategoryService_SeedDefaults(t *testing.T) {
	repo := &stubCategoryRepo{}
	svc := NewCategoryService(repo)

	if err := svc.SeedDefaults(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("SeedDefaults returned error: %v", err)
	}
	first, _ := svc.List(context.Background(), "alice@example.com")
	if len(first) != len(domain.DefaultCategories("alice@example.com")) {
		t.Fatalf("expected full default set, got %d categories", len(first))
	}

	// Second call must be a no-op.
	if err := svc.SeedDefaults(context.Background(), "alice@example.com"); err != nil {
		t.Fatalf("SeedDefaults returned error: %v", err)
	}
	second, _ := svc.List(context.Background(), "alice@example.com")
	if len(second) != len(first) {
		t.Fatalf("seeding twice must not duplicate categories: %d vs %d", len(second), len(first))
	}
}

func TestCategoryService_Remove_OtherUsersCategory(t *testing.T) {
	repo := &stubCategoryRepo{}
	svc := NewCategoryService(repo)

	created, err := svc.Add(context.Background(), "alice@example.com", "Chess", domain.GroupOther)
	if err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := svc.Remove(context.Background(), "bob@example.com", created.ID); err != domain.ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound for foreign category, got %v", err)
	}
	if err := svc.Remove(context.Background(), "alice@example.com", created.ID); err != nil {
		t.Fatalf("owner must be able to remove, got %v", err)
	}
}
