package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	defaultEndpoint      = "https://identitytoolkit.googleapis.com/v1"
	defaultTokenEndpoint = "https://securetoken.googleapis.com/v1"
)

// Config holds identity provider settings.
type Config struct {
	// APIKey is the provider's web API key. Required.
	APIKey string

	// Endpoint is the Identity Toolkit base URL. Defaults to the hosted
	// service; override it for tests or a local emulator.
	Endpoint string

	// TokenEndpoint is the secure-token base URL used for refresh.
	TokenEndpoint string

	// HTTPClient overrides the retrying HTTP client.
	HTTPClient *retryablehttp.Client
}

// Client talks to the identity provider.
type Client struct {
	apiKey        string
	endpoint      string
	tokenEndpoint string
	http          *retryablehttp.Client
}

// New creates an identity provider client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("auth: api key is required")
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = retryablehttp.NewClient()
		httpClient.RetryMax = 2
		httpClient.Logger = nil
	}
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	tokenEndpoint := cfg.TokenEndpoint
	if tokenEndpoint == "" {
		tokenEndpoint = defaultTokenEndpoint
	}
	return &Client{
		apiKey:        cfg.APIKey,
		endpoint:      strings.TrimRight(endpoint, "/"),
		tokenEndpoint: strings.TrimRight(tokenEndpoint, "/"),
		http:          httpClient,
	}, nil
}

type signUpRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	DisplayName       string `json:"displayName,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type signInRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type authResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
}

type oobCodeRequest struct {
	RequestType string `json:"requestType"`
	Email       string `json:"email"`
}

type lookupRequest struct {
	IDToken string `json:"idToken"`
}

type lookupResponse struct {
	Users []struct {
		LocalID     string `json:"localId"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
	} `json:"users"`
}

type refreshResponse struct {
	UserID       string `json:"user_id"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token"`
}

// SignUp creates a new account and returns the signed-in identity.
func (c *Client) SignUp(ctx context.Context, email, password, displayName string) (*Identity, error) {
	var resp authResponse
	req := signUpRequest{Email: email, Password: password, DisplayName: displayName, ReturnSecureToken: true}
	if err := c.post(ctx, c.endpoint+"/accounts:signUp", req, &resp); err != nil {
		return nil, err
	}
	return &Identity{
		UserID:       resp.LocalID,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		Token:        resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// SignIn authenticates with email and password.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	var resp authResponse
	req := signInRequest{Email: email, Password: password, ReturnSecureToken: true}
	if err := c.post(ctx, c.endpoint+"/accounts:signInWithPassword", req, &resp); err != nil {
		return nil, err
	}
	return &Identity{
		UserID:       resp.LocalID,
		Email:        resp.Email,
		DisplayName:  resp.DisplayName,
		Token:        resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// SendPasswordReset asks the provider to email a password reset link.
func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	var resp struct {
		Email string `json:"email"`
	}
	req := oobCodeRequest{RequestType: "PASSWORD_RESET", Email: email}
	return c.post(ctx, c.endpoint+"/accounts:sendOobCode", req, &resp)
}

// Lookup resolves the identity behind an ID token.
func (c *Client) Lookup(ctx context.Context, token string) (*Identity, error) {
	var resp lookupResponse
	if err := c.post(ctx, c.endpoint+"/accounts:lookup", lookupRequest{IDToken: token}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Users) == 0 {
		return nil, &Error{StatusCode: http.StatusNotFound, Message: "USER_NOT_FOUND"}
	}
	u := resp.Users[0]
	return &Identity{
		UserID:      u.LocalID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Token:       token,
	}, nil
}

// Refresh exchanges a refresh token for a fresh ID token. The token
// endpoint speaks form encoding, not JSON.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (*Identity, error) {
	form := "grant_type=refresh_token&refresh_token=" + refreshToken
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost,
		c.tokenEndpoint+"/token?key="+c.apiKey, []byte(form))
	if err != nil {
		return nil, fmt.Errorf("auth: build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("auth: refresh token: %w", err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("auth: read refresh response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, extractError(httpResp.StatusCode, body)
	}

	var resp refreshResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("auth: decode refresh response: %w", err)
	}
	return &Identity{
		UserID:       resp.UserID,
		Token:        resp.IDToken,
		RefreshToken: resp.RefreshToken,
	}, nil
}

// post sends a JSON request to an Identity Toolkit endpoint and decodes
// the JSON response into out.
func (c *Client) post(ctx context.Context, url string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("auth: encode request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url+"?key="+c.apiKey, payload)
	if err != nil {
		return fmt.Errorf("auth: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("auth: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("auth: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return extractError(resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("auth: decode response: %w", err)
	}
	return nil
}

// extractError pulls the provider's error code out of an error payload.
// Payloads look like {"error":{"message":"EMAIL_EXISTS"}}; when the body
// does not parse, the raw body is kept so nothing is lost.
func extractError(status int, body []byte) error {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return &Error{StatusCode: status, Message: payload.Error.Message}
	}
	return &Error{StatusCode: status, Message: strings.TrimSpace(string(body))}
}
