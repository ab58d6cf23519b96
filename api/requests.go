package api

// ──────────────────────────────────────────────────
// Contact requests
// ──────────────────────────────────────────────────

// CreateContactRequest is the body for creating a contact.
type CreateContactRequest struct {
	Name        string `json:"name" description:"Contact name"`
	Email       string `json:"email" description:"Email address"`
	PhoneNumber string `json:"phoneNumber" description:"Phone number (optional +, 2-15 digits)"`
	Address     string `json:"address,omitempty" description:"Postal address"`
}

// UpdateContactRequest is the body for updating a contact. Empty
// fields are left unchanged; address is nullable so it can be cleared.
type UpdateContactRequest struct {
	Name        string  `json:"name,omitempty" description:"Contact name"`
	Email       string  `json:"email,omitempty" description:"Email address"`
	PhoneNumber string  `json:"phoneNumber,omitempty" description:"Phone number"`
	Address     *string `json:"address,omitempty" description:"Postal address"`
}

// GetContactRequest is the path parameter for a single contact.
type GetContactRequest struct {
	ContactID string `path:"contactId" description:"Contact ID"`
}

// ListContactsRequest holds query parameters for listing contacts.
type ListContactsRequest struct {
	Query string `query:"q" description:"Filter by name, email, or phone substring"`
}

// ──────────────────────────────────────────────────
// Account requests
// ──────────────────────────────────────────────────

// RegisterRequest is the body for creating an account.
type RegisterRequest struct {
	Email       string `json:"email" description:"Email address"`
	Password    string `json:"password" description:"Password"`
	DisplayName string `json:"displayName,omitempty" description:"Display name"`
}

// LoginRequest is the body for signing in.
type LoginRequest struct {
	Email    string `json:"email" description:"Email address"`
	Password string `json:"password" description:"Password"`
}

// ResetPasswordRequest is the body for requesting a reset email.
type ResetPasswordRequest struct {
	Email string `json:"email" description:"Email address"`
}

// RefreshRequest is the body for refreshing a session token.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" description:"Refresh token"`
}

// MeRequest holds the session token for identity lookup.
type MeRequest struct {
	Token string `query:"token" description:"Session ID token"`
}
