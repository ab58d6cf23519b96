package contact

import (
	"context"

	"github.com/xraph/rolodex/id"
)

// Store defines persistence operations for contacts.
type Store interface {
	// AddContact persists a new contact, keyed by its ID.
	AddContact(ctx context.Context, c *Contact) error

	// ListContacts returns all contacts belonging to ownerID,
	// ordered by creation time descending (most recent first).
	ListContacts(ctx context.Context, ownerID string) ([]*Contact, error)

	// GetContact retrieves a contact by ID. It does not filter by owner;
	// ownership is enforced by the caller.
	GetContact(ctx context.Context, contactID id.ContactID) (*Contact, error)

	// UpdateContact refreshes c.UpdatedAt to the current UTC time and
	// overwrites the stored record keyed by c.ID. The refreshed
	// timestamp is written back through c.
	UpdateContact(ctx context.Context, c *Contact) error

	// DeleteContact removes a contact by ID.
	DeleteContact(ctx context.Context, contactID id.ContactID) error

	// SearchContacts returns the subset of ListContacts(ownerID) whose
	// name or email contains term case-insensitively, or whose phone
	// number contains term. An empty or whitespace-only term behaves
	// as ListContacts.
	SearchContacts(ctx context.Context, ownerID, term string) ([]*Contact, error)
}
