// Package auth implements a client for a hosted identity provider
// exposing the Identity Toolkit REST API (sign-up, password sign-in,
// password reset, token refresh, and account lookup).
//
// The client holds no session state. Each call returns the identity
// and tokens it produced; callers decide where to keep them.
package auth

import "fmt"

// Identity describes an authenticated user as reported by the provider.
type Identity struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	DisplayName  string `json:"display_name,omitempty"`
	Token        string `json:"token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

// Error is a failure reported by the identity provider. Message holds
// the provider's error code (for example EMAIL_EXISTS or
// INVALID_LOGIN_CREDENTIALS) when one could be parsed, otherwise the
// raw response body.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("auth: provider returned %d: %s", e.StatusCode, e.Message)
}
