package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/AET-DevOps25/team-opsontherocks/internal/api/middleware"
	"github.com/AET-DevOps25/team-opsontherocks/internal/auth"
)

// ctxPrincipal extracts the principal bound by the Authenticate filter.
// Protected routes sit behind RequireAuth, so absence here means a route was
// wired without the guard; fail the request rather than panic.
func ctxPrincipal(c echo.Context) (*auth.Principal, error) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok || principal.Subject == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return principal, nil
}
