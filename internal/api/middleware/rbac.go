package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/workbridge/client/internal/core/domain"
)

// RequireRole lets through only accounts holding one of the given roles
// (domain.RoleFreelancer, domain.RoleRecruiter).
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := AccountFrom(c)
			if account == nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if !hasRole(account, allowed) {
				return echo.NewHTTPError(http.StatusForbidden, "this page is not available for your account type")
			}
			return next(c)
		}
	}
}

func hasRole(account *domain.Account, allowed map[string]struct{}) bool {
	if _, ok := allowed[domain.RoleFreelancer]; ok && account.IsFreelancer {
		return true
	}
	if _, ok := allowed[domain.RoleRecruiter]; ok && account.IsClient {
		return true
	}
	return false
}
