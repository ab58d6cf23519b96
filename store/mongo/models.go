package mongo

import (
	"time"

	"github.com/xraph/grove"

	"github.com/xraph/rolodex/contact"
	"github.com/xraph/rolodex/id"
)

type contactModel struct {
	grove.BaseModel `grove:"table:rolodex_contacts"`
	ID              string    `grove:"id,pk"        bson:"_id"`
	Name            string    `grove:"name"         bson:"name"`
	Email           string    `grove:"email"        bson:"email"`
	PhoneNumber     string    `grove:"phone_number" bson:"phone_number"`
	Address         string    `grove:"address"      bson:"address,omitempty"`
	OwnerID         string    `grove:"owner_id"     bson:"owner_id"`
	CreatedAt       time.Time `grove:"created_at"   bson:"created_at"`
	UpdatedAt       time.Time `grove:"updated_at"   bson:"updated_at"`
}

func contactToModel(c *contact.Contact) *contactModel {
	return &contactModel{
		ID:          c.ID.String(),
		Name:        c.Name,
		Email:       c.Email,
		PhoneNumber: c.PhoneNumber,
		Address:     c.Address,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func contactFromModel(m *contactModel) *contact.Contact {
	cid, _ := id.ParseContactID(m.ID) //nolint:errcheck // stored IDs are always valid
	return &contact.Contact{
		ID:          cid,
		Name:        m.Name,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		Address:     m.Address,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
