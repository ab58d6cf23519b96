package api

import (
	"fmt"
	"net/http"

	"github.com/xraph/forge"

	"github.com/xraph/rolodex"
	"github.com/xraph/rolodex/contact"
	"github.com/xraph/rolodex/id"
)

func (a *API) registerContactRoutes(router forge.Router) error {
	g := router.Group("/v1", forge.WithGroupTags("contacts"))

	if err := g.POST("/contacts", a.createContact,
		forge.WithSummary("Create contact"),
		forge.WithDescription("Creates a new contact for the authenticated user."),
		forge.WithOperationID("createContact"),
		forge.WithRequestSchema(CreateContactRequest{}),
		forge.WithCreatedResponse(&contact.Contact{}),
		forge.WithErrorResponses(),
	); err != nil {
		return err
	}

	if err := g.GET("/contacts", a.listContacts,
		forge.WithSummary("List contacts"),
		forge.WithDescription("Lists the authenticated user's contacts, newest first. An optional q parameter filters by name, email, or phone."),
		forge.WithOperationID("listContacts"),
		forge.WithRequestSchema(ListContactsRequest{}),
		forge.WithResponseSchema(http.StatusOK, "Contact list", []*contact.Contact{}),
		forge.WithErrorResponses(),
	); err != nil {
		return err
	}

	if err := g.GET("/contacts/:contactId", a.getContact,
		forge.WithSummary("Get contact"),
		forge.WithDescription("Returns one of the authenticated user's contacts."),
		forge.WithOperationID("getContact"),
		forge.WithResponseSchema(http.StatusOK, "Contact details", &contact.Contact{}),
		forge.WithErrorResponses(),
	); err != nil {
		return err
	}

	if err := g.PUT("/contacts/:contactId", a.updateContact,
		forge.WithSummary("Update contact"),
		forge.WithDescription("Updates an existing contact. Empty fields are left unchanged."),
		forge.WithOperationID("updateContact"),
		forge.WithRequestSchema(UpdateContactRequest{}),
		forge.WithResponseSchema(http.StatusOK, "Updated contact", &contact.Contact{}),
		forge.WithErrorResponses(),
	); err != nil {
		return err
	}

	return g.DELETE("/contacts/:contactId", a.deleteContact,
		forge.WithSummary("Delete contact"),
		forge.WithDescription("Deletes a contact."),
		forge.WithOperationID("deleteContact"),
		forge.WithNoContentResponse(),
		forge.WithErrorResponses(),
	)
}

func (a *API) createContact(ctx forge.Context, req *CreateContactRequest) (*contact.Contact, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	c, err := a.eng.CreateContact(ctx.Context(), ownerID, rolodex.ContactInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return c, ctx.JSON(http.StatusCreated, c)
}

func (a *API) listContacts(ctx forge.Context, req *ListContactsRequest) ([]*contact.Contact, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}

	// An empty q lists everything; SearchContacts handles both.
	contacts, err := a.eng.SearchContacts(ctx.Context(), ownerID, req.Query)
	if err != nil {
		return nil, mapError(err)
	}
	if contacts == nil {
		contacts = []*contact.Contact{}
	}
	return contacts, ctx.JSON(http.StatusOK, contacts)
}

func (a *API) getContact(ctx forge.Context, _ *GetContactRequest) (*contact.Contact, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	contactID, err := id.ParseContactID(ctx.Param("contactId"))
	if err != nil {
		return nil, forge.BadRequest(fmt.Sprintf("invalid contact ID: %v", err))
	}

	c, err := a.eng.GetContact(ctx.Context(), ownerID, contactID)
	if err != nil {
		return nil, mapError(err)
	}
	return c, ctx.JSON(http.StatusOK, c)
}

func (a *API) updateContact(ctx forge.Context, req *UpdateContactRequest) (*contact.Contact, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	contactID, err := id.ParseContactID(ctx.Param("contactId"))
	if err != nil {
		return nil, forge.BadRequest(fmt.Sprintf("invalid contact ID: %v", err))
	}

	c, err := a.eng.UpdateContact(ctx.Context(), ownerID, contactID, rolodex.UpdateInput{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return c, ctx.JSON(http.StatusOK, c)
}

func (a *API) deleteContact(ctx forge.Context, _ *GetContactRequest) (*struct{}, error) {
	ownerID, err := owner(ctx)
	if err != nil {
		return nil, err
	}
	contactID, err := id.ParseContactID(ctx.Param("contactId"))
	if err != nil {
		return nil, forge.BadRequest(fmt.Sprintf("invalid contact ID: %v", err))
	}

	if err := a.eng.DeleteContact(ctx.Context(), ownerID, contactID); err != nil {
		return nil, mapError(err)
	}
	return nil, ctx.NoContent(http.StatusNoContent)
}
