// Package hybrid implements the composite store as a facade over the
// local file backend and the remote document backend. On first use it
// probes the remote backend's capability and remembers the answer, but
// every operation is served by the local backend; the remote store
// stays dormant until the dispatch policy changes.
package hybrid

import (
	"context"
	"log/slog"
	"sync"

	"github.com/xraph/rolodex/contact"
	"github.com/xraph/rolodex/id"
	"github.com/xraph/rolodex/store"
)

// Compile-time interface check.
var _ store.Store = (*Store)(nil)

// Option configures the hybrid store.
type Option func(*Store)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.logger = l } }

// Store routes contact operations between the two backends.
type Store struct {
	local  store.Store
	remote store.Store
	logger *slog.Logger

	probeOnce       sync.Once
	remoteAvailable bool
}

// New creates a hybrid store over a local and a remote backend. The
// remote backend may be nil when none is configured.
func New(local, remote store.Store, opts ...Option) *Store {
	s := &Store{local: local, remote: remote, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RemoteAvailable reports the probed capability of the remote backend.
// The probe runs once and the answer is cached for the lifetime of the
// store.
func (s *Store) RemoteAvailable() bool {
	s.probeOnce.Do(func() {
		s.remoteAvailable = s.remote != nil && s.remote.Available()
		s.logger.Info("storage backend selected",
			slog.Bool("remote_available", s.remoteAvailable),
			slog.String("backend", "local"),
		)
	})
	return s.remoteAvailable
}

// backend returns the store serving the next operation. The remote
// capability is probed so the decision is logged, but dispatch is
// pinned to the local backend.
func (s *Store) backend() store.Store {
	s.RemoteAvailable()
	return s.local
}

// Available always reports true; the local backend serves regardless
// of remote capability.
func (s *Store) Available() bool { return true }

// Migrate prepares the serving backend.
func (s *Store) Migrate(ctx context.Context) error {
	return s.backend().Migrate(ctx)
}

// Ping checks the serving backend.
func (s *Store) Ping(ctx context.Context) error {
	return s.backend().Ping(ctx)
}

// Close closes both backends.
func (s *Store) Close() error {
	err := s.local.Close()
	if s.remote != nil {
		if rerr := s.remote.Close(); err == nil {
			err = rerr
		}
	}
	return err
}

// ──────────────────────────────────────────────────
// Contact Store
// ──────────────────────────────────────────────────

func (s *Store) AddContact(ctx context.Context, c *contact.Contact) error {
	return s.backend().AddContact(ctx, c)
}

func (s *Store) ListContacts(ctx context.Context, ownerID string) ([]*contact.Contact, error) {
	return s.backend().ListContacts(ctx, ownerID)
}

func (s *Store) GetContact(ctx context.Context, contactID id.ContactID) (*contact.Contact, error) {
	return s.backend().GetContact(ctx, contactID)
}

func (s *Store) UpdateContact(ctx context.Context, c *contact.Contact) error {
	return s.backend().UpdateContact(ctx, c)
}

func (s *Store) DeleteContact(ctx context.Context, contactID id.ContactID) error {
	return s.backend().DeleteContact(ctx, contactID)
}

func (s *Store) SearchContacts(ctx context.Context, ownerID, term string) ([]*contact.Contact, error) {
	return s.backend().SearchContacts(ctx, ownerID, term)
}
