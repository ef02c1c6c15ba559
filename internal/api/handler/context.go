package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atmavision/booking-system/internal/core/domain"
)

// viewerFromContext rebuilds the authenticated viewer from the claims the
// Auth middleware injected. A missing role claim means the middleware did not
// run (or the token carried no identity) — fail fast with 401 before any
// service call.
func viewerFromContext(c echo.Context) (domain.User, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.User{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("user_id").(string)
	name, _ := c.Get("name").(string)

	return domain.User{ID: id, Name: name, Role: domain.Role(role)}, nil
}
