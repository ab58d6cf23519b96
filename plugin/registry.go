package plugin

import (
	"context"
	"log/slog"

	"github.com/xraph/rolodex/auth"
	"github.com/xraph/rolodex/contact"
	"github.com/xraph/rolodex/id"
)

// Named entry types pair a hook with the plugin name for logging.

type contactCreatedEntry struct {
	name string
	hook ContactCreated
}
type contactUpdatedEntry struct {
	name string
	hook ContactUpdated
}
type contactDeletedEntry struct {
	name string
	hook ContactDeleted
}
type userRegisteredEntry struct {
	name string
	hook UserRegistered
}
type userLoggedInEntry struct {
	name string
	hook UserLoggedIn
}
type shutdownEntry struct {
	name string
	hook Shutdown
}

// Registry holds registered plugins and dispatches lifecycle events.
// It type-caches plugins at registration time so emit calls iterate
// only over plugins implementing the relevant hook.
type Registry struct {
	plugins []Plugin
	logger  *slog.Logger

	contactCreated []contactCreatedEntry
	contactUpdated []contactUpdatedEntry
	contactDeleted []contactDeletedEntry
	userRegistered []userRegisteredEntry
	userLoggedIn   []userLoggedInEntry
	shutdown       []shutdownEntry
}

// NewRegistry creates a plugin registry with the given logger.
func NewRegistry(logger *slog.Logger) *Registry {
	return &Registry{logger: logger}
}

// Register adds a plugin and type-asserts it into all applicable
// hook caches. Plugins are notified in registration order.
func (r *Registry) Register(p Plugin) {
	r.plugins = append(r.plugins, p)
	name := p.Name()

	if h, ok := p.(ContactCreated); ok {
		r.contactCreated = append(r.contactCreated, contactCreatedEntry{name, h})
	}
	if h, ok := p.(ContactUpdated); ok {
		r.contactUpdated = append(r.contactUpdated, contactUpdatedEntry{name, h})
	}
	if h, ok := p.(ContactDeleted); ok {
		r.contactDeleted = append(r.contactDeleted, contactDeletedEntry{name, h})
	}
	if h, ok := p.(UserRegistered); ok {
		r.userRegistered = append(r.userRegistered, userRegisteredEntry{name, h})
	}
	if h, ok := p.(UserLoggedIn); ok {
		r.userLoggedIn = append(r.userLoggedIn, userLoggedInEntry{name, h})
	}
	if h, ok := p.(Shutdown); ok {
		r.shutdown = append(r.shutdown, shutdownEntry{name, h})
	}
}

// Plugins returns all registered plugins.
func (r *Registry) Plugins() []Plugin { return r.plugins }

// ──────────────────────────────────────────────────
// Contact event emitters
// ──────────────────────────────────────────────────

// EmitContactCreated notifies all plugins that implement ContactCreated.
func (r *Registry) EmitContactCreated(ctx context.Context, c *contact.Contact) {
	for _, e := range r.contactCreated {
		if err := e.hook.OnContactCreated(ctx, c); err != nil {
			r.logHookError("OnContactCreated", e.name, err)
		}
	}
}

// EmitContactUpdated notifies all plugins that implement ContactUpdated.
func (r *Registry) EmitContactUpdated(ctx context.Context, c *contact.Contact) {
	for _, e := range r.contactUpdated {
		if err := e.hook.OnContactUpdated(ctx, c); err != nil {
			r.logHookError("OnContactUpdated", e.name, err)
		}
	}
}

// EmitContactDeleted notifies all plugins that implement ContactDeleted.
func (r *Registry) EmitContactDeleted(ctx context.Context, contactID id.ContactID) {
	for _, e := range r.contactDeleted {
		if err := e.hook.OnContactDeleted(ctx, contactID); err != nil {
			r.logHookError("OnContactDeleted", e.name, err)
		}
	}
}

// ──────────────────────────────────────────────────
// Account event emitters
// ──────────────────────────────────────────────────

// EmitUserRegistered notifies all plugins that implement UserRegistered.
func (r *Registry) EmitUserRegistered(ctx context.Context, ident *auth.Identity) {
	for _, e := range r.userRegistered {
		if err := e.hook.OnUserRegistered(ctx, ident); err != nil {
			r.logHookError("OnUserRegistered", e.name, err)
		}
	}
}

// EmitUserLoggedIn notifies all plugins that implement UserLoggedIn.
func (r *Registry) EmitUserLoggedIn(ctx context.Context, ident *auth.Identity) {
	for _, e := range r.userLoggedIn {
		if err := e.hook.OnUserLoggedIn(ctx, ident); err != nil {
			r.logHookError("OnUserLoggedIn", e.name, err)
		}
	}
}

// ──────────────────────────────────────────────────
// Shutdown emitter
// ──────────────────────────────────────────────────

// EmitShutdown notifies all plugins that implement Shutdown.
func (r *Registry) EmitShutdown(ctx context.Context) {
	for _, e := range r.shutdown {
		if err := e.hook.OnShutdown(ctx); err != nil {
			r.logHookError("OnShutdown", e.name, err)
		}
	}
}

// logHookError logs a warning when a lifecycle hook returns an error.
// Errors from hooks are never propagated — they must not block the pipeline.
func (r *Registry) logHookError(hook, pluginName string, err error) {
	r.logger.Warn("plugin hook error",
		slog.String("hook", hook),
		slog.String("plugin", pluginName),
		slog.String("error", err.Error()),
	)
}
