package middlewares

import (
	"net/http"

	"github.com/sweetstack/sweet-shop-api/internal/logger"
	"github.com/sweetstack/sweet-shop-api/internal/models"
)

// AdminMiddleware requires that AuthMiddleware already ran and that the
// authenticated role is exactly "admin".
func AdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := GetClaimsFromContext(r.Context())
			if claims == nil {
				writeError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			if claims.Role != models.RoleAdmin {
				logger.Log.Infow("admin access denied", "username", claims.Username, "role", claims.Role)
				writeError(w, http.StatusForbidden, "Admin access required")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
