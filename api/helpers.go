package api

import (
	"errors"
	"net/http"

	"github.com/xraph/forge"

	"github.com/xraph/rolodex"
	"github.com/xraph/rolodex/auth"
)

// mapError maps domain errors to Forge HTTP errors.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, rolodex.ErrContactNotFound) {
		return forge.NotFound(err.Error())
	}
	if errors.Is(err, rolodex.ErrInvalidContact) {
		return forge.BadRequest(err.Error())
	}
	if errors.Is(err, rolodex.ErrNotAuthenticated) {
		return forge.Forbidden(err.Error())
	}

	var authErr *auth.Error
	if errors.As(err, &authErr) {
		switch authErr.StatusCode {
		case http.StatusBadRequest, http.StatusNotFound:
			return forge.BadRequest(authErr.Message)
		case http.StatusForbidden:
			return forge.Forbidden(authErr.Message)
		}
	}
	return err
}

// owner resolves the authenticated owner for the request.
func owner(ctx forge.Context) (string, error) {
	ownerID, err := rolodex.OwnerFromContext(ctx.Context())
	if err != nil {
		return "", mapError(err)
	}
	return ownerID, nil
}
