package rolodex

import "errors"

// Common errors returned by the engine and its stores.
var (
	// ErrContactNotFound is returned when a contact does not exist or
	// does not belong to the requesting owner. The two cases are not
	// distinguishable to callers.
	ErrContactNotFound = errors.New("rolodex: contact not found")

	// ErrInvalidContact is returned when contact input fails validation.
	ErrInvalidContact = errors.New("rolodex: invalid contact")

	// ErrNotAuthenticated is returned when an operation requires an
	// owner identity and none was supplied.
	ErrNotAuthenticated = errors.New("rolodex: not authenticated")

	// ErrNoAuthenticator is returned by account operations when the
	// engine was built without an identity provider client.
	ErrNoAuthenticator = errors.New("rolodex: no authenticator configured")

	// ErrStoreRequired is returned by NewEngine when no store was
	// provided.
	ErrStoreRequired = errors.New("rolodex: store is required")
)
