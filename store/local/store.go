// Package local implements the composite store on a single JSON file.
// All contacts live in memory behind a read-write mutex; every mutation
// rewrites the whole file. It is the always-available durable backend.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/xraph/rolodex"
	"github.com/xraph/rolodex/contact"
	"github.com/xraph/rolodex/id"
	"github.com/xraph/rolodex/store"
)

// Compile-time interface checks.
var (
	_ contact.Store = (*Store)(nil)
	_ store.Store   = (*Store)(nil)
)

// Option configures the local store.
type Option func(*Store)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.logger = l } }

// Store is a thread-safe JSON-file-backed contact store.
type Store struct {
	path   string
	logger *slog.Logger

	mu       sync.RWMutex
	contacts map[string]*contact.Contact
}

// New creates a local store backed by the JSON file at path and loads
// any existing records. A missing file is not an error; the store
// starts empty and the file appears on the first mutation. A file that
// cannot be read or parsed is logged and treated as empty rather than
// blocking startup.
func New(path string, opts ...Option) *Store {
	s := &Store{
		path:     path,
		logger:   slog.Default(),
		contacts: make(map[string]*contact.Contact),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load()
	return s
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Available always reports true. The local file is the fallback
// backend and is assumed writable.
func (s *Store) Available() bool { return true }

// Migrate creates the data directory so the first write cannot fail on
// a missing parent.
func (s *Store) Migrate(_ context.Context) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("local: create data dir: %w", err)
		}
	}
	return nil
}

// Ping is a no-op for the local store.
func (s *Store) Ping(_ context.Context) error { return nil }

// Close is a no-op for the local store.
func (s *Store) Close() error { return nil }

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("local store: read failed, starting empty",
				slog.String("path", s.path),
				slog.String("error", err.Error()),
			)
		}
		return
	}

	var records []*contact.Contact
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("local store: parse failed, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return
	}

	for _, c := range records {
		s.contacts[c.ID.String()] = c
	}
	s.logger.Debug("local store: loaded",
		slog.String("path", s.path),
		slog.Int("contacts", len(records)),
	)
}

// snapshotLocked returns all contacts sorted by ID for a deterministic
// file layout. Callers must hold at least a read lock.
func (s *Store) snapshotLocked() []*contact.Contact {
	records := make([]*contact.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		records = append(records, c)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ID.String() < records[j].ID.String()
	})
	return records
}

// persist rewrites the whole file from a snapshot. It runs outside the
// lock; when two writers overlap, the later finisher wins, which
// matches last-write-wins semantics of the store as a whole. On
// failure the in-memory state keeps the mutation and the error is
// both logged and returned.
func (s *Store) persist(records []*contact.Contact) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			s.logger.Error("local store: create data dir failed",
				slog.String("path", s.path),
				slog.String("error", err.Error()),
			)
			return fmt.Errorf("local: create data dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("local: encode contacts: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		s.logger.Error("local store: write failed",
			slog.String("path", s.path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("local: write contacts: %w", err)
	}
	return nil
}

// ──────────────────────────────────────────────────
// Contact Store
// ──────────────────────────────────────────────────

func (s *Store) AddContact(_ context.Context, c *contact.Contact) error {
	s.mu.Lock()
	s.contacts[c.ID.String()] = c.Clone()
	records := s.snapshotLocked()
	s.mu.Unlock()
	return s.persist(records)
}

func (s *Store) ListContacts(_ context.Context, ownerID string) ([]*contact.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*contact.Contact
	for _, c := range s.contacts {
		if c.OwnerID == ownerID {
			out = append(out, c.Clone())
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (s *Store) GetContact(_ context.Context, contactID id.ContactID) (*contact.Contact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.contacts[contactID.String()]
	if !ok {
		return nil, fmt.Errorf("local: contact %s: %w", contactID, rolodex.ErrContactNotFound)
	}
	return c.Clone(), nil
}

func (s *Store) UpdateContact(_ context.Context, c *contact.Contact) error {
	s.mu.Lock()
	if _, ok := s.contacts[c.ID.String()]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("local: contact %s: %w", c.ID, rolodex.ErrContactNotFound)
	}
	c.UpdatedAt = time.Now().UTC()
	s.contacts[c.ID.String()] = c.Clone()
	records := s.snapshotLocked()
	s.mu.Unlock()
	return s.persist(records)
}

func (s *Store) DeleteContact(_ context.Context, contactID id.ContactID) error {
	s.mu.Lock()
	if _, ok := s.contacts[contactID.String()]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("local: contact %s: %w", contactID, rolodex.ErrContactNotFound)
	}
	delete(s.contacts, contactID.String())
	records := s.snapshotLocked()
	s.mu.Unlock()
	return s.persist(records)
}

func (s *Store) SearchContacts(ctx context.Context, ownerID, term string) ([]*contact.Contact, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s.ListContacts(ctx, ownerID)
	}
	lower := strings.ToLower(term)

	all, err := s.ListContacts(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	var out []*contact.Contact
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.Name), lower) ||
			strings.Contains(strings.ToLower(c.Email), lower) ||
			strings.Contains(c.PhoneNumber, term) {
			out = append(out, c)
		}
	}
	return out, nil
}
