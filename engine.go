package rolodex

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/xraph/rolodex/auth"
	"github.com/xraph/rolodex/contact"
	"github.com/xraph/rolodex/id"
	"github.com/xraph/rolodex/plugin"
	"github.com/xraph/rolodex/store"
)

// Authenticator is the identity provider surface the engine needs.
// auth.Client implements it against the hosted provider.
type Authenticator interface {
	SignUp(ctx context.Context, email, password, displayName string) (*auth.Identity, error)
	SignIn(ctx context.Context, email, password string) (*auth.Identity, error)
	SendPasswordReset(ctx context.Context, email string) error
	Refresh(ctx context.Context, refreshToken string) (*auth.Identity, error)
	Lookup(ctx context.Context, token string) (*auth.Identity, error)
}

// Compile-time interface check.
var _ Authenticator = (*auth.Client)(nil)

// Engine is the central contact manager. It owns validation and
// ownership rules, delegates persistence to the store, account
// operations to the authenticator, and fires plugin hooks.
type Engine struct {
	store   store.Store
	auth    Authenticator
	cache   Cache
	plugins *plugin.Registry
	logger  *slog.Logger
	config  Config
}

// NewEngine creates a new Rolodex engine with the given options.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		logger: slog.Default(),
		config: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		return nil, ErrStoreRequired
	}
	return e, nil
}

// Store returns the underlying composite store.
func (e *Engine) Store() store.Store { return e.store }

// Plugins returns the plugin registry (may be nil).
func (e *Engine) Plugins() *plugin.Registry { return e.plugins }

// Start performs any startup initialization.
func (e *Engine) Start(_ context.Context) error { return nil }

// Stop performs graceful shutdown and notifies plugins.
func (e *Engine) Stop(ctx context.Context) error {
	if e.plugins != nil {
		e.plugins.EmitShutdown(ctx)
	}
	return nil
}

// ──────────────────────────────────────────────────
// Contact operations
// ──────────────────────────────────────────────────

// CreateContact validates the input, assigns identity and timestamps,
// and persists a new contact for ownerID.
func (e *Engine) CreateContact(ctx context.Context, ownerID string, in ContactInput) (*contact.Contact, error) {
	if ownerID == "" {
		return nil, ErrNotAuthenticated
	}

	now := time.Now().UTC()
	c := &contact.Contact{
		ID:          id.NewContactID(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
		Address:     strings.TrimSpace(in.Address),
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}

	if err := e.store.AddContact(ctx, c); err != nil {
		return nil, err
	}
	e.invalidate(ctx, ownerID)

	e.logger.Debug("contact created",
		slog.String("contact_id", c.ID.String()),
		slog.String("owner_id", ownerID),
	)
	if e.plugins != nil {
		e.plugins.EmitContactCreated(ctx, c)
	}
	return c, nil
}

// ListContacts returns all of ownerID's contacts, newest first. An
// empty search term means the full list, so listing shares the search
// path and its cache.
func (e *Engine) ListContacts(ctx context.Context, ownerID string) ([]*contact.Contact, error) {
	return e.SearchContacts(ctx, ownerID, "")
}

// GetContact retrieves one of ownerID's contacts. A contact belonging
// to another owner is reported as not found, indistinguishable from a
// contact that does not exist.
func (e *Engine) GetContact(ctx context.Context, ownerID string, contactID id.ContactID) (*contact.Contact, error) {
	if ownerID == "" {
		return nil, ErrNotAuthenticated
	}
	c, err := e.store.GetContact(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if c.OwnerID != ownerID {
		return nil, fmt.Errorf("contact %s: %w", contactID, ErrContactNotFound)
	}
	return c, nil
}

// UpdateContact applies the non-empty fields of in to one of ownerID's
// contacts. Identity, owner, and creation time never change; the store
// refreshes the update timestamp when it persists the record.
func (e *Engine) UpdateContact(ctx context.Context, ownerID string, contactID id.ContactID, in UpdateInput) (*contact.Contact, error) {
	c, err := e.GetContact(ctx, ownerID, contactID)
	if err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		c.Name = v
	}
	if v := strings.TrimSpace(in.Email); v != "" {
		c.Email = v
	}
	if v := strings.TrimSpace(in.PhoneNumber); v != "" {
		c.PhoneNumber = v
	}
	if in.Address != nil {
		c.Address = strings.TrimSpace(*in.Address)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}
	if err := e.store.UpdateContact(ctx, c); err != nil {
		return nil, err
	}
	e.invalidate(ctx, ownerID)

	if e.plugins != nil {
		e.plugins.EmitContactUpdated(ctx, c)
	}
	return c, nil
}

// DeleteContact removes one of ownerID's contacts.
func (e *Engine) DeleteContact(ctx context.Context, ownerID string, contactID id.ContactID) error {
	if _, err := e.GetContact(ctx, ownerID, contactID); err != nil {
		return err
	}
	if err := e.store.DeleteContact(ctx, contactID); err != nil {
		return err
	}
	e.invalidate(ctx, ownerID)

	e.logger.Debug("contact deleted",
		slog.String("contact_id", contactID.String()),
		slog.String("owner_id", ownerID),
	)
	if e.plugins != nil {
		e.plugins.EmitContactDeleted(ctx, contactID)
	}
	return nil
}

// SearchContacts filters ownerID's contacts by term. Results are
// cached per owner and term until the owner's next mutation or the
// cache TTL, whichever comes first.
func (e *Engine) SearchContacts(ctx context.Context, ownerID, term string) ([]*contact.Contact, error) {
	if ownerID == "" {
		return nil, ErrNotAuthenticated
	}
	term = strings.TrimSpace(term)

	if e.cache != nil {
		if cached, ok := e.cache.Get(ctx, ownerID, term); ok {
			return cached, nil
		}
	}

	result, err := e.store.SearchContacts(ctx, ownerID, term)
	if err != nil {
		return nil, err
	}
	if n := e.config.MaxSearchResults; n > 0 && len(result) > n {
		result = result[:n]
	}
	if e.cache != nil {
		e.cache.Set(ctx, ownerID, term, result)
	}
	return result, nil
}

func (e *Engine) invalidate(ctx context.Context, ownerID string) {
	if e.cache != nil {
		e.cache.InvalidateOwner(ctx, ownerID)
	}
}

// ──────────────────────────────────────────────────
// Account operations
// ──────────────────────────────────────────────────

// Register creates a new account with the identity provider.
func (e *Engine) Register(ctx context.Context, reg Registration) (*auth.Identity, error) {
	if e.auth == nil {
		return nil, ErrNoAuthenticator
	}
	ident, err := e.auth.SignUp(ctx, reg.Email, reg.Password, reg.DisplayName)
	if err != nil {
		return nil, err
	}
	e.logger.Info("user registered", slog.String("user_id", ident.UserID))
	if e.plugins != nil {
		e.plugins.EmitUserRegistered(ctx, ident)
	}
	return ident, nil
}

// Login authenticates against the identity provider.
func (e *Engine) Login(ctx context.Context, creds Credentials) (*auth.Identity, error) {
	if e.auth == nil {
		return nil, ErrNoAuthenticator
	}
	ident, err := e.auth.SignIn(ctx, creds.Email, creds.Password)
	if err != nil {
		return nil, err
	}
	if e.plugins != nil {
		e.plugins.EmitUserLoggedIn(ctx, ident)
	}
	return ident, nil
}

// ResetPassword asks the provider to email a password reset link. It
// succeeds without revealing whether the address has an account.
func (e *Engine) ResetPassword(ctx context.Context, email string) error {
	if e.auth == nil {
		return ErrNoAuthenticator
	}
	return e.auth.SendPasswordReset(ctx, email)
}

// RefreshToken exchanges a refresh token for a fresh session.
func (e *Engine) RefreshToken(ctx context.Context, refreshToken string) (*auth.Identity, error) {
	if e.auth == nil {
		return nil, ErrNoAuthenticator
	}
	return e.auth.Refresh(ctx, refreshToken)
}

// CurrentUser resolves the identity behind a session token.
func (e *Engine) CurrentUser(ctx context.Context, token string) (*auth.Identity, error) {
	if e.auth == nil {
		return nil, ErrNoAuthenticator
	}
	return e.auth.Lookup(ctx, token)
}
