package middleware

import (
	"net/http"

	"github.com/heartmarshall/canvas-backend/pkg/ctxutil"
)

// RequireAdmin rejects requests whose token does not carry the admin role.
// Anonymous requests get 401, authenticated non-admins 403.
func RequireAdmin() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			if !ctxutil.IsAdminCtx(r.Context()) {
				http.Error(w, "admin access required", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
