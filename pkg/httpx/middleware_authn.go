package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/tokenkeep/pkg/slogx"
)

// TokenVerifier answers whether a presented bearer token is live.
// An error means the answer could not be obtained.
type TokenVerifier interface {
	IsTokenVerified(ctx context.Context, token string) (bool, error)
}

// TokenVerifierFunc adapts a function to TokenVerifier.
type TokenVerifierFunc func(ctx context.Context, token string) (bool, error)

func (f TokenVerifierFunc) IsTokenVerified(ctx context.Context, token string) (bool, error) {
	return f(ctx, token)
}

// AuthnMiddleware rejects requests without a verified bearer token.
func AuthnMiddleware(v TokenVerifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			ok, err := v.IsTokenVerified(ctx, raw)
			if err != nil {
				log.Error("token verification unavailable", "error", err)
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			if !ok {
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = context.WithValue(ctx, CtxKeyToken, raw)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	w.WriteHeader(http.StatusUnauthorized)
}
