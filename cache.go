package rolodex

import (
	"context"

	"github.com/xraph/rolodex/contact"
)

// Cache provides caching for contact search results.
type Cache interface {
	// Get returns a cached result set, if available.
	Get(ctx context.Context, ownerID, term string) ([]*contact.Contact, bool)

	// Set stores a result set in the cache.
	Set(ctx context.Context, ownerID, term string, contacts []*contact.Contact)

	// InvalidateOwner removes all cached results for an owner.
	InvalidateOwner(ctx context.Context, ownerID string)
}
