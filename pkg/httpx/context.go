package httpx

import "context"

type ctxKey string

const (
	CtxKeyToken ctxKey = "token"
)

// TokenFromContext returns the bearer token accepted by AuthnMiddleware.
func TokenFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(CtxKeyToken).(string)
	return v, ok
}
