package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/worklane/hrm-backend-go/internal/domain/user"
	"github.com/worklane/hrm-backend-go/internal/handler/http/response"
)

// AdminOnly requires the admin role.
func AdminOnly(next http.Handler) http.Handler {
	return requireRoles(next, user.ErrAdminPrivilegeRequired, user.RoleAdmin)
}

// HROnly requires the hr or admin role.
func HROnly(next http.Handler) http.Handler {
	return requireRoles(next, user.ErrHRAccessRequired, user.RoleAdmin, user.RoleHR)
}

// ManagerOnly requires the manager, hr or admin role.
func ManagerOnly(next http.Handler) http.Handler {
	return requireRoles(next, user.ErrManagerAccessRequired, user.RoleAdmin, user.RoleHR, user.RoleManager)
}

func requireRoles(next http.Handler, denied error, allowed ...user.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, denied)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, denied)
			return
		}

		role := user.Role(roleStr)
		for _, a := range allowed {
			if role == a {
				next.ServeHTTP(w, r)
				return
			}
		}

		response.HandleError(w, denied)
	})
}
