package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/subscribely/admin-dashboard/internal/core/domain"
)

// AdminOnly gates admin-only pages. A non-admin visitor is not shown an
// error: they are redirected to redirectTo, the same silent correction the
// dashboard applies in its navigation.
func AdminOnly(redirectTo string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != domain.RoleAdmin {
				return c.Redirect(http.StatusSeeOther, redirectTo)
			}
			return next(c)
		}
	}
}
