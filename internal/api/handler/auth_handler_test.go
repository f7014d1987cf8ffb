package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/AET-DevOps25/team-opsontherocks/internal/auth"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, name string) (string, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password, name string) (string, error) {
	return s.registerFn(ctx, email, password, name)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

type stubLimiter struct {
	allowed  bool
	failures int
	resets   int
}

func (s *stubLimiter) Allow(_ context.Context, _ string) (bool, error) { return s.allowed, nil }
func (s *stubLimiter) NoteFailure(_ context.Context, _ string) error {
	s.failures++
	return nil
}
func (s *stubLimiter) Reset(_ context.Context, _ string) error {
	s.resets++
	return nil
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func localPolicy() auth.CookiePolicy {
	return auth.NewCookiePolicy(auth.EnvLocal, "")
}

func sessionCookieHeader(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, header := range rec.Header().Values(echo.HeaderSetCookie) {
		if strings.HasPrefix(header, auth.CookieName+"=") {
			return header
		}
	}
	t.Fatalf("no %s cookie in response: %v", auth.CookieName, rec.Header())
	return ""
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (string, error) {
			if email != "alice@example.com" || password != "pw123456" || name != "Alice" {
				t.Fatalf("unexpected args: %s %s %s", email, password, name)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub, localPolicy(), nil, zerolog.Nop())

	c, rec := newAuthContext(t, http.MethodPost, "/register", `{"email":"alice@example.com","password":"pw123456","name":"Alice"}`)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token in body, got %+v", resp)
	}

	cookie := sessionCookieHeader(t, rec)
	if !strings.Contains(cookie, "token123") || !strings.Contains(cookie, "HttpOnly") || !strings.Contains(cookie, "Path=/") {
		t.Fatalf("unexpected session cookie: %q", cookie)
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (string, error) {
			return "", domain.ErrUserExists
		},
	}
	handler := NewAuthHandler(stub, localPolicy(), nil, zerolog.Nop())

	c, rec := newAuthContext(t, http.MethodPost, "/register", `{"email":"alice@example.com","password":"pw123456","name":"Alice"}`)
	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Email already in use") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, name string) (string, error) {
			t.Fatalf("service must not be called on invalid payload")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub, localPolicy(), nil, zerolog.Nop())

	for _, body := range []string{
		"not-json",
		`{"email":"not-an-email","password":"pw123456","name":"Alice"}`,
		`{"email":"alice@example.com","password":"short","name":"Alice"}`,
		`{"email":"alice@example.com","password":"pw123456"}`,
	} {
		c, rec := newAuthContext(t, http.MethodPost, "/register", body)
		_ = handler.Register(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("body %q: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "token456", nil
		},
	}
	handler := NewAuthHandler(stub, localPolicy(), limiter, zerolog.Nop())

	c, rec := newAuthContext(t, http.MethodPost, "/login", `{"email":"alice@example.com","password":"pw123456"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := sessionCookieHeader(t, rec)
	if !strings.Contains(cookie, "token456") {
		t.Fatalf("session cookie missing token: %q", cookie)
	}
	if limiter.resets != 1 {
		t.Fatalf("successful login must reset the limiter, resets=%d", limiter.resets)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	limiter := &stubLimiter{allowed: true}
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, localPolicy(), limiter, zerolog.Nop())

	c, rec := newAuthContext(t, http.MethodPost, "/login", `{"email":"alice@example.com","password":"wrongpw12"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "Invalid credentials" {
		t.Fatalf("expected the generic credentials message, got %+v", resp)
	}
	if limiter.failures != 1 {
		t.Fatalf("failed login must be recorded, failures=%d", limiter.failures)
	}
}

func TestAuthHandler_Login_RateLimited(t *testing.T) {
	limiter := &stubLimiter{allowed: false}
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			t.Fatalf("service must not be called when throttled")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub, localPolicy(), limiter, zerolog.Nop())

	c, rec := newAuthContext(t, http.MethodPost, "/login", `{"email":"alice@example.com","password":"pw123456"}`)
	_ = handler.Login(c)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_Idempotent(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, localPolicy(), nil, zerolog.Nop())

	var headers []string
	for i := 0; i < 2; i++ {
		c, rec := newAuthContext(t, http.MethodPost, "/logout", "")
		if err := handler.Logout(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		headers = append(headers, sessionCookieHeader(t, rec))
	}

	if headers[0] != headers[1] {
		t.Fatalf("logout must be idempotent: %q vs %q", headers[0], headers[1])
	}
	if !strings.Contains(headers[0], auth.CookieName+"=;") && !strings.Contains(headers[0], auth.CookieName+"=\"\"") {
		t.Fatalf("logout cookie must carry an empty value: %q", headers[0])
	}
	if !strings.Contains(headers[0], "Max-Age=0") {
		t.Fatalf("logout cookie must expire immediately: %q", headers[0])
	}
}

func TestAuthHandler_HealthCheck(t *testing.T) {
	handler := NewAuthHandler(&stubAuthService{}, localPolicy(), nil, zerolog.Nop())

	c, rec := newAuthContext(t, http.MethodGet, "/healthCheck", "")
	if err := handler.HealthCheck(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Auth service running" {
		t.Fatalf("unexpected body: %q", rec.Body.String())
	}
}
