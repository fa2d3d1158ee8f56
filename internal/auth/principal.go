package auth

import "context"

// Principal identifies the caller of an engine operation. The engine never
// reads ambient request state; every mutating call takes one of these.
type Principal struct {
	ID      int64
	IsStaff bool
}

type contextKey int

const principalKey contextKey = iota

// WithPrincipal attaches the caller identity to the request context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFrom extracts the caller identity, if any, from the context.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)
	return p, ok
}
