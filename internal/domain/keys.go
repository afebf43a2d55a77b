package domain

import (
	"context"

	"go-jobboard-backend/pkg/auth"
)

type CtxKey string

const (
	KeyClaims    CtxKey = "AuthClaims"
	KeyRequestID CtxKey = "RequestID"
)

// WithClaims returns a context carrying the verified credential claims.
// The gate installs this; nothing downstream re-verifies.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, KeyClaims, claims)
}

// ClaimsFromContext retrieves the verified claims, if the request passed
// through the gate.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(KeyClaims).(*auth.Claims)
	return claims, ok
}
