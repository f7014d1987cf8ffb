package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/AET-DevOps25/team-opsontherocks/internal/api/metrics"
	"github.com/AET-DevOps25/team-opsontherocks/internal/auth"
)

// PrincipalContextKey is the echo context key under which Authenticate binds
// the *auth.Principal for downstream handlers.
const PrincipalContextKey = "principal"

const bearerPrefix = "Bearer "

// Authenticate is the per-request filter: it extracts a candidate token,
// validates it, and on success binds the principal to the request context.
// It never rejects a request. Missing or invalid tokens leave the request
// anonymous; whether anonymous access is allowed is decided downstream by
// RequireAuth on the routes that need it.
func Authenticate(codec *auth.TokenCodec, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := candidateToken(c)
			if !ok {
				return next(c)
			}

			claims, err := codec.Parse(token)
			if err != nil {
				// Rejection reason is observability only; the outcome is the
				// same anonymous pass-through either way.
				metrics.TokenValidationsTotal.WithLabelValues(rejectionReason(err)).Inc()
				log.Debug().Err(err).Str("path", c.Path()).Msg("candidate token rejected")
				return next(c)
			}

			metrics.TokenValidationsTotal.WithLabelValues("ok").Inc()
			c.Set(PrincipalContextKey, claims.Principal())
			return next(c)
		}
	}
}

// candidateToken picks the token by precedence: an Authorization header with
// the literal "Bearer " prefix wins over the JWT_TOKEN cookie.
func candidateToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return header[len(bearerPrefix):], true
	}

	if cookie, err := c.Cookie(auth.CookieName); err == nil && cookie.Value != "" {
		return cookie.Value, true
	}

	return "", false
}

// PrincipalFrom returns the principal bound by Authenticate, if any.
func PrincipalFrom(c echo.Context) (*auth.Principal, bool) {
	principal, ok := c.Get(PrincipalContextKey).(*auth.Principal)
	if !ok || principal == nil {
		return nil, false
	}
	return principal, true
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "bad_signature"
	default:
		return "malformed"
	}
}
