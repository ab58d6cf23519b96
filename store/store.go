// Package store defines the aggregate persistence interface. The contact
// subsystem defines its own store interface; the composite Store adds
// lifecycle and capability methods on top.
// Backends: local JSON file, remote document store, and the hybrid facade.
package store

import (
	"context"

	"github.com/xraph/rolodex/contact"
)

// Store is the aggregate persistence interface.
// A single backend (local, mongo, hybrid) implements all of it.
type Store interface {
	contact.Store

	// Available reports whether the backend can serve requests right
	// now without attempting a connection. For the local file store
	// this is always true; for the remote store it reflects whether
	// credentials are configured.
	Available() bool

	// Migrate prepares backend schema or directories.
	Migrate(ctx context.Context) error

	// Ping checks backend connectivity.
	Ping(ctx context.Context) error

	// Close closes the store connection.
	Close() error
}
