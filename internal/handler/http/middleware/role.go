package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/kerjahub/attendance-backend-go/internal/domain/auth"
	"github.com/kerjahub/attendance-backend-go/internal/domain/user"
	"github.com/kerjahub/attendance-backend-go/internal/handler/http/response"
)

// AdminOnly gates admin endpoints on the role claim. Unknown or missing
// roles parse to employee and are rejected.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		roleClaim, _ := claims["role"].(string)
		if !user.ParseRole(roleClaim).IsAdministrative() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
