// Package mongo implements the composite store on a MongoDB collection
// via the Grove ORM. The connection is established lazily on first use
// so a deployment without remote credentials still starts; every call
// before that reports the misconfiguration instead of panicking.
package mongo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	mongod "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/xraph/grove"
	"github.com/xraph/grove/drivers/mongodriver"

	"github.com/xraph/rolodex"
	"github.com/xraph/rolodex/contact"
	"github.com/xraph/rolodex/id"
	"github.com/xraph/rolodex/store"
)

// colContacts is the contact collection name.
const colContacts = "rolodex_contacts"

// Compile-time interface check.
var _ store.Store = (*Store)(nil)

// Config holds remote store settings.
type Config struct {
	// CredentialsFile is the path to the service account credentials.
	CredentialsFile string

	// ProjectID names the hosting project.
	ProjectID string

	// Collection overrides the contact collection name.
	Collection string
}

// DialFunc opens the database connection. It is called at most once,
// on first use.
type DialFunc func(ctx context.Context) (*grove.DB, error)

// Store is a MongoDB implementation of the composite Rolodex store.
type Store struct {
	cfg  Config
	dial DialFunc

	once sync.Once
	db   *grove.DB
	mdb  *mongodriver.MongoDB
	err  error
}

// New creates a remote store around an already-open Grove database.
func New(db *grove.DB, cfg Config) *Store {
	s := &Store{cfg: cfg, db: db, mdb: mongodriver.Unwrap(db)}
	s.once.Do(func() {})
	return s
}

// NewLazy creates a remote store that dials on first use. The config
// is validated at that point; a missing credentials file or project ID
// yields a descriptive error rather than a connection attempt.
func NewLazy(cfg Config, dial DialFunc) *Store {
	return &Store{cfg: cfg, dial: dial}
}

// Available reports whether remote credentials are configured. It
// inspects configuration only and never dials.
func (s *Store) Available() bool {
	if s.db != nil {
		return true
	}
	if s.cfg.CredentialsFile == "" {
		return false
	}
	_, err := os.Stat(s.cfg.CredentialsFile)
	return err == nil
}

// ensure initializes the connection exactly once. The outcome, success
// or failure, is cached; a misconfigured store fails the same way on
// every call.
func (s *Store) ensure(ctx context.Context) error {
	s.once.Do(func() {
		if s.cfg.CredentialsFile == "" || s.cfg.ProjectID == "" {
			s.err = fmt.Errorf(
				"mongo: remote store not configured: credentials file %q, project %q, collection %q",
				s.cfg.CredentialsFile, s.cfg.ProjectID, s.collection(),
			)
			return
		}
		if _, err := os.Stat(s.cfg.CredentialsFile); err != nil {
			s.err = fmt.Errorf(
				"mongo: credentials file %q for project %q unreadable: %w",
				s.cfg.CredentialsFile, s.cfg.ProjectID, err,
			)
			return
		}

		db, err := s.dial(ctx)
		if err != nil {
			s.err = fmt.Errorf("mongo: connect to project %q: %w", s.cfg.ProjectID, err)
			return
		}
		s.db = db
		s.mdb = mongodriver.Unwrap(db)
	})
	return s.err
}

func (s *Store) collection() string {
	if s.cfg.Collection != "" {
		return s.cfg.Collection
	}
	return colContacts
}

// Migrate creates indexes for the contact collection.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	models := []mongod.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
	}
	if _, err := s.mdb.Collection(s.collection()).Indexes().CreateMany(ctx, models); err != nil {
		return fmt.Errorf("mongo: migrate %s indexes: %w", s.collection(), err)
	}
	return nil
}

// Ping verifies the database connection.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	return s.db.Ping(ctx)
}

// Close closes the database connection if one was established.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// isNoDocuments checks if an error wraps mongo.ErrNoDocuments.
func isNoDocuments(err error) bool {
	return errors.Is(err, mongod.ErrNoDocuments)
}

// ──────────────────────────────────────────────────
// Contact Store
// ──────────────────────────────────────────────────

func (s *Store) AddContact(ctx context.Context, c *contact.Contact) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	m := contactToModel(c)
	_, err := s.mdb.NewInsert(m).Exec(ctx)
	if err == nil {
		return nil
	}
	if !mongod.IsDuplicateKeyError(err) {
		return fmt.Errorf("mongo: add contact: %w", err)
	}

	// Keyed writes are last-write-wins; replace the existing document.
	if _, err := s.mdb.NewUpdate(m).Filter(bson.M{"_id": m.ID}).Exec(ctx); err != nil {
		return fmt.Errorf("mongo: replace contact: %w", err)
	}
	return nil
}

func (s *Store) ListContacts(ctx context.Context, ownerID string) ([]*contact.Contact, error) {
	return s.find(ctx, bson.M{"owner_id": ownerID})
}

func (s *Store) GetContact(ctx context.Context, contactID id.ContactID) (*contact.Contact, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	var m contactModel
	err := s.mdb.NewFind(&m).
		Filter(bson.M{"_id": contactID.String()}).
		Scan(ctx)
	if err != nil {
		if isNoDocuments(err) {
			return nil, fmt.Errorf("mongo: contact %s: %w", contactID, rolodex.ErrContactNotFound)
		}
		return nil, fmt.Errorf("mongo: get contact: %w", err)
	}
	return contactFromModel(&m), nil
}

func (s *Store) UpdateContact(ctx context.Context, c *contact.Contact) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	c.UpdatedAt = time.Now().UTC()
	m := contactToModel(c)
	res, err := s.mdb.NewUpdate(m).
		Filter(bson.M{"_id": m.ID}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mongo: update contact: %w", err)
	}
	if res.MatchedCount() == 0 {
		return fmt.Errorf("mongo: contact %s: %w", c.ID, rolodex.ErrContactNotFound)
	}
	return nil
}

func (s *Store) DeleteContact(ctx context.Context, contactID id.ContactID) error {
	if err := s.ensure(ctx); err != nil {
		return err
	}
	res, err := s.mdb.NewDelete((*contactModel)(nil)).
		Filter(bson.M{"_id": contactID.String()}).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mongo: delete contact: %w", err)
	}
	if res.DeletedCount() == 0 {
		return fmt.Errorf("mongo: contact %s: %w", contactID, rolodex.ErrContactNotFound)
	}
	return nil
}

// SearchContacts fetches the owner's contacts and filters in memory.
// The collection carries no text index, and result sets are per-owner
// and small, so a server-side query buys nothing.
func (s *Store) SearchContacts(ctx context.Context, ownerID, term string) ([]*contact.Contact, error) {
	term = strings.TrimSpace(term)
	all, err := s.ListContacts(ctx, ownerID)
	if err != nil || term == "" {
		return all, err
	}
	lower := strings.ToLower(term)

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

func (s *Store) find(ctx context.Context, filter bson.M) ([]*contact.Contact, error) {
	if err := s.ensure(ctx); err != nil {
		return nil, err
	}
	var models []contactModel
	err := s.mdb.NewFind(&models).
		Filter(filter).
		Sort(bson.D{{Key: "created_at", Value: -1}}).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("mongo: find contacts: %w", err)
	}
	result := make([]*contact.Contact, len(models))
	for i := range models {
		result[i] = contactFromModel(&models[i])
	}
	return result, nil
}
