package extension

import (
	"log/slog"

	"github.com/xraph/rolodex"
	"github.com/xraph/rolodex/plugin"
	"github.com/xraph/rolodex/store"
)

// ExtOption configures the Rolodex Forge extension.
type ExtOption func(*Extension)

// WithStore sets the persistence backend.
func WithStore(s store.Store) ExtOption {
	return func(e *Extension) {
		e.rolodexOpts = append(e.rolodexOpts, rolodex.WithStore(s))
	}
}

// WithAuth sets the identity provider client.
func WithAuth(a rolodex.Authenticator) ExtOption {
	return func(e *Extension) {
		e.rolodexOpts = append(e.rolodexOpts, rolodex.WithAuth(a))
	}
}

// WithConfig sets the extension configuration.
func WithConfig(cfg Config) ExtOption {
	return func(e *Extension) {
		e.config = cfg
	}
}

// WithEngineOptions adds engine-level options.
func WithEngineOptions(opts ...rolodex.Option) ExtOption {
	return func(e *Extension) {
		e.rolodexOpts = append(e.rolodexOpts, opts...)
	}
}

// WithPlugin registers a lifecycle hook plugin.
func WithPlugin(x plugin.Plugin) ExtOption {
	return func(e *Extension) {
		e.plugins = append(e.plugins, x)
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) ExtOption {
	return func(e *Extension) {
		e.logger = l
	}
}

// WithDisableRoutes disables the registration of HTTP routes.
func WithDisableRoutes() ExtOption {
	return func(e *Extension) {
		e.config.DisableRoutes = true
	}
}

// WithDisableMigrate disables auto-migration on start.
func WithDisableMigrate() ExtOption {
	return func(e *Extension) {
		e.config.DisableMigrate = true
	}
}
