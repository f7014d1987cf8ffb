package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/AET-DevOps25/team-opsontherocks/internal/auth"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/ports"
)

// AuthService implements registration and login. Each successful call issues
// exactly one fresh token; nothing is cached or reused across calls.
type AuthService struct {
	users      ports.UserRepository
	categories ports.CategoryService // nil disables default-category seeding
	codec      *auth.TokenCodec
}

func NewAuthService(users ports.UserRepository, categories ports.CategoryService, codec *auth.TokenCodec) *AuthService {
	return &AuthService{users: users, categories: categories, codec: codec}
}

// Register creates a credential record and issues a token for the new
// subject. The existence check is by identity only: a taken email fails with
// ErrUserExists regardless of the supplied password.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (string, error) {
	if email == "" || password == "" || name == "" {
		return "", domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{Email: email, Name: name, PasswordHash: string(hash)}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	if s.categories != nil {
		if err := s.categories.SeedDefaults(ctx, email); err != nil {
			return "", err
		}
	}

	return s.codec.Issue(email)
}

// Login verifies the credential pair and issues a fresh token. An unknown
// email and a wrong password both fail with ErrInvalidCredentials so the
// response cannot be used to enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	return s.codec.Issue(user.Email)
}
