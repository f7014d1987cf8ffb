package auth

import (
	"fmt"
	"net/http"
)

// CookieName is the session cookie carrying the token between the SPA client
// and the API.
const CookieName = "JWT_TOKEN"

// Environment selects the cookie transport policy. It comes from
// configuration only; request data (notably the Origin header) is attacker
// controlled and must never influence cookie scope.
type Environment string

const (
	EnvLocal      Environment = "local"
	EnvStaging    Environment = "staging"
	EnvProduction Environment = "production"
)

// ParseEnvironment validates a configured environment string.
func ParseEnvironment(s string) (Environment, error) {
	switch env := Environment(s); env {
	case EnvLocal, EnvStaging, EnvProduction:
		return env, nil
	default:
		return "", fmt.Errorf("unknown environment %q", s)
	}
}

// CookiePolicy fixes the transport attributes of the session cookie for one
// deployment environment. Attributes are a function of deployment context
// only, never of token content.
type CookiePolicy struct {
	Secure   bool
	SameSite http.SameSite

	// Domain is the registrable parent domain (with leading dot) shared
	// across subdomains. Empty scopes the cookie to the exact host.
	Domain string
}

// NewCookiePolicy returns the policy for env. Local development runs over
// plain HTTP on one host, so Lax without Secure. Everything else serves the
// SPA from a different origin: SameSite=None is required, and browsers only
// honour None when paired with Secure, so the two always travel together.
// The domain attribute applies only outside local and comes from config.
func NewCookiePolicy(env Environment, domain string) CookiePolicy {
	if env == EnvLocal {
		return CookiePolicy{Secure: false, SameSite: http.SameSiteLaxMode}
	}
	return CookiePolicy{Secure: true, SameSite: http.SameSiteNoneMode, Domain: domain}
}

// SessionCookie wraps a freshly issued token for transport. Max-Age matches
// the token validity window.
func (p CookiePolicy) SessionCookie(token string) *http.Cookie {
	return p.cookie(token, ValiditySeconds())
}

// ExpiredCookie is the logout cookie: empty value and Max-Age=0 on the wire
// so the browser deletes its copy immediately. Stateless tokens cannot be
// revoked server side; this only clears the client.
func (p CookiePolicy) ExpiredCookie() *http.Cookie {
	// net/http serialises MaxAge < 0 as Max-Age=0.
	return p.cookie("", -1)
}

func (p CookiePolicy) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   maxAge,
		Secure:   p.Secure,
		SameSite: p.SameSite,
		Domain:   p.Domain,
	}
}
