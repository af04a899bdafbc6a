package middleware

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"github.com/libraryhub/catalog-api/internal/core/domain"
)

// RBAC gates routes behind Auth by the role claim of the session. A session
// whose role is not in the allowed set is rejected with domain.ErrForbidden;
// the central error handler renders it as 403.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return fmt.Errorf("rbac: role %q: %w", role, domain.ErrForbidden)
			}
			return next(c)
		}
	}
}
