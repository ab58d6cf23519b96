// Package contact defines the Contact entity, its validation rules, and its
// store interface.
package contact

import (
	"time"

	"github.com/xraph/rolodex/id"
)

// Contact is a single address-book record owned by an authenticated user.
//
// ID, OwnerID, and CreatedAt are assigned at creation and never change.
// UpdatedAt is refreshed on every successful mutation. Timestamps are UTC.
type Contact struct {
	ID          id.ContactID `json:"id"`
	Name        string       `json:"name" validate:"required,min=1,max=100"`
	Email       string       `json:"email" validate:"required,email"`
	PhoneNumber string       `json:"phoneNumber" validate:"required,phone"`
	Address     string       `json:"address,omitempty" validate:"omitempty,max=500"`
	OwnerID     string       `json:"ownerId" validate:"required"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Clone returns a copy of the contact. Stores hand out clones so callers
// cannot mutate shared state.
func (c *Contact) Clone() *Contact {
	cp := *c
	return &cp
}
