package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-auth-service/internal/models"
)

// SessionReader returns the identity bound to the request's session.
type SessionReader interface {
	Current(ctx context.Context, r *http.Request) (*models.Identity, error)
}

type identityKey struct{}

// SessionMiddleware guards protected routes: requests without an active
// session are redirected to the login entry point, everything else passes
// through with the identity stored in the request context.
func SessionMiddleware(sess SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			identity, err := sess.Current(ctx, r)
			if err != nil {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			ctx = context.WithValue(ctx, identityKey{}, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ContextWithIdentity binds an identity to the context the same way
// SessionMiddleware does.
func ContextWithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity stored by SessionMiddleware,
// or nil if the request did not pass through it.
func IdentityFromContext(ctx context.Context) *models.Identity {
	identity, _ := ctx.Value(identityKey{}).(*models.Identity)
	return identity
}
