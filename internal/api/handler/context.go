package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// ctxClaims extracts the auth claims injected by the Auth middleware.
// An empty role means the middleware never ran on this route; treat the
// request as unauthenticated rather than guessing a default.
func ctxClaims(c echo.Context) (userID, role string, err error) {
	role, _ = c.Get("role").(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "token missing subject")
	}

	return userID, role, nil
}

func isAdmin(role string) bool {
	return role == domain.RoleAdmin
}
