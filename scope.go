package rolodex

import (
	"context"

	"github.com/xraph/forge"
)

// OwnerFromContext resolves the authenticated owner from the Forge
// request identity or, in standalone mode, from WithOwner. It returns
// ErrNotAuthenticated when neither is set.
func OwnerFromContext(ctx context.Context) (string, error) {
	if userID := forge.UserIDFromContext(ctx); userID != "" {
		return userID, nil
	}
	if owner := ownerIDFromContext(ctx); owner != "" {
		return owner, nil
	}
	return "", ErrNotAuthenticated
}
