package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/AET-DevOps25/team-opsontherocks/internal/api/metrics"
	"github.com/AET-DevOps25/team-opsontherocks/internal/auth"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/domain"
	"github.com/AET-DevOps25/team-opsontherocks/internal/core/ports"
)

// AuthHandler exposes registration, login, and logout. It owns the session
// cookie on the way out: every successful issue wraps the token per the
// configured cookie policy, and logout sends the expiring counterpart.
type AuthHandler struct {
	authService ports.AuthService
	policy      auth.CookiePolicy
	limiter     ports.LoginLimiter // nil disables login throttling
	log         zerolog.Logger
}

func NewAuthHandler(authService ports.AuthService, policy auth.CookiePolicy, limiter ports.LoginLimiter, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, policy: policy, limiter: limiter, log: log}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string `json:"token"`
}

// Register creates a new user account and issues a session token.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	token, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Name)
	if err != nil {
		switch err {
		case domain.ErrUserExists:
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "Email already in use"})
		case domain.ErrInvalidCredentials:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
		default:
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
			return err
		}
	}

	metrics.RegistrationsTotal.WithLabelValues("ok").Inc()
	c.SetCookie(h.policy.SessionCookie(token))
	return c.JSON(http.StatusOK, authResponse{Token: token})
}

// Login authenticates a credential pair and issues a fresh session token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  map[string]string
// @Failure      429   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	client := c.RealIP()
	if h.limiter != nil {
		allowed, err := h.limiter.Allow(c.Request().Context(), client)
		if err != nil {
			// Throttling is a guard rail, not a dependency: fail open.
			h.log.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			metrics.LoginsTotal.WithLabelValues("rate_limited").Inc()
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "Too many login attempts"})
		}
	}

	token, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if err == domain.ErrInvalidCredentials {
			metrics.LoginsTotal.WithLabelValues("invalid_credentials").Inc()
			if h.limiter != nil {
				if lerr := h.limiter.NoteFailure(c.Request().Context(), client); lerr != nil {
					h.log.Warn().Err(lerr).Msg("login limiter unavailable")
				}
			}
			// One generic message for unknown email and wrong password alike.
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("ok").Inc()
	if h.limiter != nil {
		if lerr := h.limiter.Reset(c.Request().Context(), client); lerr != nil {
			h.log.Warn().Err(lerr).Msg("login limiter unavailable")
		}
	}
	c.SetCookie(h.policy.SessionCookie(token))
	return c.JSON(http.StatusOK, authResponse{Token: token})
}

// Logout expires the session cookie. There is no server-side session to tear
// down, so the call is idempotent and ignores whether a valid token was sent.
//
// @Summary      Logout the current user
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.policy.ExpiredCookie())
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// HealthCheck reports process liveness. Always anonymous.
//
// @Summary      Health check for the authentication service
// @Tags         auth
// @Produce      plain
// @Success      200  {string}  string
// @Router       /healthCheck [get]
func (h *AuthHandler) HealthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "Auth service running")
}
