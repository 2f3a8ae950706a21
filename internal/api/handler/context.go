package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pigeonpulse/loft-api/internal/api/middleware"
)

// ctxPrincipal extracts the principal injected by the RequestContext
// filter. Its absence on a protected route means the filter was bypassed
// somehow, which is itself an authentication failure.
func ctxPrincipal(c echo.Context) (middleware.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return middleware.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication context")
	}
	return p, nil
}

// targetLoftID resolves the loft a request operates on: the explicit
// loft_id query parameter when present, otherwise the principal's default
// loft from the token.
func targetLoftID(c echo.Context, p middleware.Principal) string {
	if id := c.QueryParam("loft_id"); id != "" {
		return id
	}
	return p.Loft.ID
}
