package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fabrica/realestate-crm/internal/core/ports"
)

// RequirePermission loads the caller's role (from the roleId claim set by
// Auth) and rejects the request unless the role grants the named permission.
// Must be mounted after Auth.
func RequirePermission(roles ports.RoleRepository, perm string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roleID, _ := c.Get("roleId").(string)
			if roleID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication claims.")
			}

			role, err := roles.FindByID(c.Request().Context(), roleID)
			if err != nil || !role.HasPermission(perm) {
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden.")
			}

			return next(c)
		}
	}
}
