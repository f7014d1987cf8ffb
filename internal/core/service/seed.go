package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/ports"
)

// seedUser pairs a demo account with its plaintext password. Hashing happens
// at seed time so the stored records look exactly like registered ones.
type seedUser struct {
	email    string
	password string
	name     string
}

var seedUsers = []seedUser{
	{"alice@example.com", "alicePass", "Alice Wonderland"},
	{"bob@example.com", "bobPass", "Bob Builder"},
	{"charlie@example.com", "charliePass", "Charlie Brown"},
}

// SeedUsers creates the demo accounts and their default categories when the
// store is empty. Subsequent startups are no-ops.
func SeedUsers(ctx context.Context, users ports.UserRepository, categories ports.CategoryService, log zerolog.Logger) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, seed := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &domain.User{Email: seed.email, Name: seed.name, PasswordHash: string(hash)}
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		if categories != nil {
			if err := categories.SeedDefaults(ctx, seed.email); err != nil {
				return err
			}
		}
		log.Info().Str("email", seed.email).Msg("seeded demo user")
	}
	return nil
}
