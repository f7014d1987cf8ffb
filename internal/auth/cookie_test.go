package auth

import (
	"net/http"
	"strings"
	"testing"
)

func TestParseEnvironment(t *testing.T) {
	for _, valid := range []string{"local", "staging", "production"} {
		if _, err := ParseEnvironment(valid); err != nil {
			t.Fatalf("expected %q to parse, got %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "dev", "prod", "Local"} {
		if _, err := ParseEnvironment(invalid); err == nil {
			t.Fatalf("expected %q to be rejected", invalid)
		}
	}
}

func TestNewCookiePolicy_Local(t *testing.T) {
	policy := NewCookiePolicy(EnvLocal, ".example.com")

	if policy.Secure {
		t.Fatalf("local cookies must not be Secure")
	}
	if policy.SameSite != http.SameSiteLaxMode {
		t.Fatalf("local cookies must be SameSite=Lax")
	}
	if policy.Domain != "" {
		t.Fatalf("local cookies must be host-scoped, got domain %q", policy.Domain)
	}
}

func TestNewCookiePolicy_Production(t *testing.T) {
	policy := NewCookiePolicy(EnvProduction, ".example.com")

	if !policy.Secure {
		t.Fatalf("production cookies must be Secure")
	}
	if policy.SameSite != http.SameSiteNoneMode {
		t.Fatalf("production cookies must be SameSite=None")
	}
	if policy.Domain != ".example.com" {
		t.Fatalf("expected configured domain, got %q", policy.Domain)
	}
}

func TestNewCookiePolicy_StagingMatchesProduction(t *testing.T) {
	staging := NewCookiePolicy(EnvStaging, "")
	if !staging.Secure || staging.SameSite != http.SameSiteNoneMode {
		t.Fatalf("staging must pair Secure with SameSite=None, got %+v", staging)
	}
}

func TestSessionCookie_Attributes(t *testing.T) {
	policy := NewCookiePolicy(EnvLocal, "")
	cookie := policy.SessionCookie("tok123")

	if cookie.Name != CookieName || cookie.Value != "tok123" {
		t.Fatalf("unexpected cookie identity: %s=%s", cookie.Name, cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must always be HttpOnly")
	}
	if cookie.Path != "/" {
		t.Fatalf("session cookie path must be /, got %q", cookie.Path)
	}
	if cookie.MaxAge != ValiditySeconds() {
		t.Fatalf("session cookie Max-Age must equal token validity, got %d", cookie.MaxAge)
	}
}

func TestExpiredCookie(t *testing.T) {
	policy := NewCookiePolicy(EnvProduction, ".example.com")
	cookie := policy.ExpiredCookie()

	if cookie.Value != "" {
		t.Fatalf("logout cookie must carry an empty value, got %q", cookie.Value)
	}
	if !cookie.HttpOnly || cookie.Path != "/" {
		t.Fatalf("logout cookie must keep HttpOnly and Path=/: %+v", cookie)
	}
	wire := cookie.String()
	if !strings.Contains(wire, "Max-Age=0") {
		t.Fatalf("logout cookie must serialise with Max-Age=0, got %q", wire)
	}
	if !strings.Contains(wire, "Secure") || !strings.Contains(wire, "SameSite=None") {
		t.Fatalf("logout cookie must keep the environment's transport attributes, got %q", wire)
	}
}
