// Package plugin defines the plugin system for Rolodex.
// Plugins are notified of lifecycle events (contact created, user
// logged in, etc.) and can react — logging, metrics, sync, etc.
//
// Each lifecycle hook is a separate interface so plugins opt in only
// to the events they care about.
package plugin

import (
	"context"

	"github.com/xraph/rolodex/auth"
	"github.com/xraph/rolodex/contact"
	"github.com/xraph/rolodex/id"
)

// Plugin is the base interface all plugins must implement.
type Plugin interface {
	// Name returns a unique human-readable name for the plugin.
	Name() string
}

// ──────────────────────────────────────────────────
// Contact lifecycle hooks
// ──────────────────────────────────────────────────

// ContactCreated is called after a contact is created.
type ContactCreated interface {
	OnContactCreated(ctx context.Context, c *contact.Contact) error
}

// ContactUpdated is called after a contact is updated.
type ContactUpdated interface {
	OnContactUpdated(ctx context.Context, c *contact.Contact) error
}

// ContactDeleted is called after a contact is deleted.
type ContactDeleted interface {
	OnContactDeleted(ctx context.Context, contactID id.ContactID) error
}

// ──────────────────────────────────────────────────
// Account lifecycle hooks
// ──────────────────────────────────────────────────

// UserRegistered is called after a new account is created.
type UserRegistered interface {
	OnUserRegistered(ctx context.Context, ident *auth.Identity) error
}

// UserLoggedIn is called after a successful sign-in.
type UserLoggedIn interface {
	OnUserLoggedIn(ctx context.Context, ident *auth.Identity) error
}

// ──────────────────────────────────────────────────
// Shutdown hook
// ──────────────────────────────────────────────────

// Shutdown is called during graceful shutdown.
type Shutdown interface {
	OnShutdown(ctx context.Context) error
}
