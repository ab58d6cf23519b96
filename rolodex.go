// Package rolodex provides a session-authenticated contact manager for Go.
//
// Rolodex keeps personal contact records behind a single storage facade:
// a durable local JSON-backed store is always available, and a remote
// document store can be configured alongside it. Users authenticate
// against an external identity provider; every contact operation takes
// the owner identity explicitly.
//
//	eng, err := rolodex.NewEngine(
//	    rolodex.WithStore(hybridStore),
//	    rolodex.WithAuth(authClient),
//	)
//	c, err := eng.CreateContact(ctx, ownerID, rolodex.ContactInput{
//	    Name:        "Ana",
//	    Email:       "ana@x.com",
//	    PhoneNumber: "+15550001",
//	})
package rolodex

// ContactInput carries the caller-supplied fields for creating a contact.
// The ID, owner, and timestamps are assigned server-side.
type ContactInput struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address,omitempty"`
}

// UpdateInput carries the replaceable fields for updating a contact.
// Empty strings leave the stored value unchanged; Address is a pointer
// so it can be cleared explicitly.
type UpdateInput struct {
	Name        string  `json:"name,omitempty"`
	Email       string  `json:"email,omitempty"`
	PhoneNumber string  `json:"phone_number,omitempty"`
	Address     *string `json:"address,omitempty"`
}

// Credentials identify a user to the external identity provider.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration carries the fields for creating a new user account.
type Registration struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}
