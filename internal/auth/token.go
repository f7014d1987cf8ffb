package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenValidity is the fixed lifetime of every issued token. It is a
	// compile-time constant on purpose: no caller can mint a longer-lived
	// token through a runtime parameter.
	TokenValidity = 24 * time.Hour

	// DefaultAuthority is assumed when a token carries no authorities claim.
	DefaultAuthority = "ROLE_USER"

	// minSecretLen is the minimum signing secret length. HS256 keys shorter
	// than the hash block size weaken the MAC, so startup must refuse them.
	minSecretLen = 64
)

var ErrWeakSecret = errors.New("jwt secret missing or too short (needs >=64 bytes)")

var errInvalidClaims = errors.New("invalid token claims")

// Claims is the signed payload of a session token.
type Claims struct {
	Authorities []string `json:"authorities,omitempty"`
	jwt.RegisteredClaims
}

// Principal builds the request identity asserted by the claims. Tokens
// without an authorities claim default to the single ROLE_USER authority;
// richer sets are decided once at issuance, never reconstructed here.
func (cl *Claims) Principal() *Principal {
	authorities := cl.Authorities
	if len(authorities) == 0 {
		authorities = []string{DefaultAuthority}
	}
	return &Principal{Subject: cl.Subject, Authorities: authorities}
}

// TokenCodec signs and parses session tokens with a process-wide HS256 key.
// The key is fixed at construction and never mutated, so a codec is safe for
// concurrent use without locking. Tests build isolated codecs with distinct
// keys rather than sharing ambient state.
type TokenCodec struct {
	key []byte
}

// NewTokenCodec builds a codec from the configured signing secret. It fails
// with ErrWeakSecret when the secret is missing or too short; callers must
// treat that as fatal and abort startup.
func NewTokenCodec(secret string) (*TokenCodec, error) {
	if len(secret) < minSecretLen {
		return nil, ErrWeakSecret
	}
	return &TokenCodec{key: []byte(secret)}, nil
}

// Issue signs a token for subject, valid for TokenValidity from now.
// Authorities are embedded only when supplied; an absent claim reads back as
// DefaultAuthority.
func (c *TokenCodec) Issue(subject string, authorities ...string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Authorities: authorities,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenValidity)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Parse verifies the signature and expiry and returns the claims. The error
// distinguishes why a token was rejected for logs and metrics only; callers
// must not change the request outcome based on it.
func (c *TokenCodec) Parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.key, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errInvalidClaims
	}
	return claims, nil
}

// Validate reports whether the token is well formed, signed with this codec's
// key, and not yet expired. It fails closed: any parse error means false.
func (c *TokenCodec) Validate(token string) bool {
	_, err := c.Parse(token)
	return err == nil
}

// Subject returns the subject claim. Defined only for tokens that passed
// Validate; on anything else it returns the empty string.
func (c *TokenCodec) Subject(token string) string {
	claims, err := c.Parse(token)
	if err != nil {
		return ""
	}
	return claims.Subject
}

// Authorities returns the authority set the token grants, defaulting to
// DefaultAuthority when the claim is absent. Defined only for valid tokens.
func (c *TokenCodec) Authorities(token string) []string {
	claims, err := c.Parse(token)
	if err != nil {
		return nil
	}
	return claims.Principal().Authorities
}

// ValiditySeconds is the token lifetime in whole seconds, which is also the
// Max-Age of a login cookie.
func ValiditySeconds() int {
	return int(TokenValidity / time.Second)
}
