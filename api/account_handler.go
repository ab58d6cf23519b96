package api

import (
	"net/http"

	"github.com/xraph/forge"

	"github.com/xraph/rolodex"
	"github.com/xraph/rolodex/auth"
)

func (a *API) registerAccountRoutes(router forge.Router) error {
	g := router.Group("/v1/auth", forge.WithGroupTags("auth"))

	if err := g.POST("/register", a.register,
		forge.WithSummary("Register"),
		forge.WithDescription("Creates a new account with the identity provider."),
		forge.WithOperationID("register"),
		forge.WithRequestSchema(RegisterRequest{}),
		forge.WithCreatedResponse(&auth.Identity{}),
		forge.WithErrorResponses(),
	); err != nil {
		return err
	}

	if err := g.POST("/login", a.login,
		forge.WithSummary("Login"),
		forge.WithDescription("Authenticates with email and password."),
		forge.WithOperationID("login"),
		forge.WithRequestSchema(LoginRequest{}),
		forge.WithResponseSchema(http.StatusOK, "Authenticated identity", &auth.Identity{}),
		forge.WithErrorResponses(),
	); err != nil {
		return err
	}

	if err := g.POST("/reset-password", a.resetPassword,
		forge.WithSummary("Reset password"),
		forge.WithDescription("Sends a password reset email. Always succeeds, whether or not the address has an account."),
		forge.WithOperationID("resetPassword"),
		forge.WithRequestSchema(ResetPasswordRequest{}),
		forge.WithNoContentResponse(),
		forge.WithErrorResponses(),
	); err != nil {
		return err
	}

	if err := g.POST("/refresh", a.refresh,
		forge.WithSummary("Refresh session"),
		forge.WithDescription("Exchanges a refresh token for a fresh ID token."),
		forge.WithOperationID("refreshSession"),
		forge.WithRequestSchema(RefreshRequest{}),
		forge.WithResponseSchema(http.StatusOK, "Refreshed identity", &auth.Identity{}),
		forge.WithErrorResponses(),
	); err != nil {
		return err
	}

	return g.GET("/me", a.me,
		forge.WithSummary("Current user"),
		forge.WithDescription("Resolves the identity behind a session token."),
		forge.WithOperationID("currentUser"),
		forge.WithRequestSchema(MeRequest{}),
		forge.WithResponseSchema(http.StatusOK, "Identity", &auth.Identity{}),
		forge.WithErrorResponses(),
	)
}

func (a *API) register(ctx forge.Context, req *RegisterRequest) (*auth.Identity, error) {
	if req.Email == "" {
		return nil, forge.BadRequest("email is required")
	}
	if req.Password == "" {
		return nil, forge.BadRequest("password is required")
	}

	ident, err := a.eng.Register(ctx.Context(), rolodex.Registration{
		Email:       req.Email,
		Password:    req.Password,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return ident, ctx.JSON(http.StatusCreated, ident)
}

func (a *API) login(ctx forge.Context, req *LoginRequest) (*auth.Identity, error) {
	if req.Email == "" || req.Password == "" {
		return nil, forge.BadRequest("email and password are required")
	}

	ident, err := a.eng.Login(ctx.Context(), rolodex.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return ident, ctx.JSON(http.StatusOK, ident)
}

func (a *API) resetPassword(ctx forge.Context, req *ResetPasswordRequest) (*struct{}, error) {
	if req.Email == "" {
		return nil, forge.BadRequest("email is required")
	}

	if err := a.eng.ResetPassword(ctx.Context(), req.Email); err != nil {
		return nil, mapError(err)
	}
	return nil, ctx.NoContent(http.StatusNoContent)
}

func (a *API) refresh(ctx forge.Context, req *RefreshRequest) (*auth.Identity, error) {
	if req.RefreshToken == "" {
		return nil, forge.BadRequest("refreshToken is required")
	}

	ident, err := a.eng.RefreshToken(ctx.Context(), req.RefreshToken)
	if err != nil {
		return nil, mapError(err)
	}
	return ident, ctx.JSON(http.StatusOK, ident)
}

func (a *API) me(ctx forge.Context, req *MeRequest) (*auth.Identity, error) {
	if req.Token == "" {
		return nil, forge.BadRequest("token is required")
	}

	ident, err := a.eng.CurrentUser(ctx.Context(), req.Token)
	if err != nil {
		return nil, mapError(err)
	}
	return ident, ctx.JSON(http.StatusOK, ident)
}
