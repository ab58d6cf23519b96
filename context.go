package rolodex

import "context"

type contextKey int

const ctxKeyOwnerID contextKey = iota

// WithOwner returns a context carrying the authenticated owner ID.
// Use this for standalone mode (without Forge).
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ctxKeyOwnerID, ownerID)
}

func ownerIDFromContext(ctx context.Context) string {
	v, ok := ctx.Value(ctxKeyOwnerID).(string)
	if !ok {
		return ""
	}
	return v
}
