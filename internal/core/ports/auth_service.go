package ports

import "context"

// AuthService bridges human-supplied credentials to signed tokens.
type AuthService interface {
	Register(ctx context.Context, email, password, name string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// LoginLimiter throttles repeated failed logins per client.
type LoginLimiter interface {
	// Allow reports whether the client may attempt another login.
	Allow(ctx context.Context, client string) (bool, error)
	// NoteFailure records one failed attempt.
	NoteFailure(ctx context.Context, client string) error
	// Reset clears the client's failure count after a successful login.
	Reset(ctx context.Context, client string) error
}
