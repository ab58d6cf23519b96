// Package middleware provides HTTP authentication middleware for Rolodex.
package middleware

import (
	"encoding/json"

	"github.com/xraph/forge"

	"github.com/xraph/rolodex"
)

// RequireUser rejects requests that carry no authenticated owner.
// Identity resolution itself is Forge's job (or an earlier middleware
// calling rolodex.WithOwner); this only enforces presence.
func RequireUser() forge.Middleware {
	return func(next forge.Handler) forge.Handler {
		return func(ctx forge.Context) error {
			if _, err := rolodex.OwnerFromContext(ctx.Context()); err != nil {
				return denyResponse(ctx)
			}
			return next(ctx)
		}
	}
}

func denyResponse(ctx forge.Context) error {
	ctx.SetHeader("Content-Type", "application/json")
	ctx.Response().WriteHeader(401)
	return json.NewEncoder(ctx.Response()).Encode(map[string]string{"error": "authentication required"})
}
