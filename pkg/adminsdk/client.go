package adminsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client talks to the dialisis admin service. The zero token value performs
// unauthenticated calls; SetToken switches subsequent calls to Bearer auth.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client

	token string
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken stores the session token used on authenticated calls.
func (c *Client) SetToken(token string) { c.token = token }

// Login authenticates and remembers the returned session token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResponse, error) {
	var resp LoginResponse
	if err := c.do(ctx, http.MethodPost, "/v1/auth/login", req, &resp, http.StatusOK); err != nil {
		return LoginResponse{}, err
	}
	c.token = resp.Token
	return resp, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/logout", nil, nil, http.StatusNoContent)
}

func (c *Client) SignUp(ctx context.Context, req SignUpRequest) (SignUpResponse, error) {
	var resp SignUpResponse
	err := c.do(ctx, http.MethodPost, "/v1/auth/sign-up", req, &resp, http.StatusCreated)
	return resp, err
}

func (c *Client) UserInfo(ctx context.Context) (UserInfo, error) {
	var resp UserInfo
	err := c.do(ctx, http.MethodGet, "/v1/userinfo", nil, &resp, http.StatusOK)
	return resp, err
}

func (c *Client) CreateInvite(ctx context.Context, req InviteCreateRequest) (InviteCreateResponse, error) {
	var resp InviteCreateResponse
	err := c.do(ctx, http.MethodPost, "/v1/invites", req, &resp, http.StatusOK)
	return resp, err
}

func (c *Client) LookupInvite(ctx context.Context, token string) (InviteLookupResponse, error) {
	var resp InviteLookupResponse
	err := c.do(ctx, http.MethodGet, "/v1/invites/"+token, nil, &resp, http.StatusOK)
	return resp, err
}

func (c *Client) ListCenters(ctx context.Context) (CentersResponse, error) {
	var resp CentersResponse
	err := c.do(ctx, http.MethodGet, "/v1/centers", nil, &resp, http.StatusOK)
	return resp, err
}

func (c *Client) GetCenter(ctx context.Context, id string) (Center, error) {
	var resp Center
	err := c.do(ctx, http.MethodGet, "/v1/centers/"+id, nil, &resp, http.StatusOK)
	return resp, err
}

func (c *Client) CreateCenter(ctx context.Context, req CenterCreateRequest) (Center, error) {
	var resp Center
	err := c.do(ctx, http.MethodPost, "/v1/centers", req, &resp, http.StatusCreated)
	return resp, err
}

func (c *Client) UpdateCenter(ctx context.Context, id string, req CenterUpdateRequest) (Center, error) {
	var resp Center
	err := c.do(ctx, http.MethodPatch, "/v1/centers/"+id, req, &resp, http.StatusOK)
	return resp, err
}

func (c *Client) DeleteCenter(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/centers/"+id, nil, nil, http.StatusNoContent)
}

func (c *Client) ListStates(ctx context.Context) (StatesResponse, error) {
	var resp StatesResponse
	err := c.do(ctx, http.MethodGet, "/v1/states", nil, &resp, http.StatusOK)
	return resp, err
}

func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/forgot-password",
		ForgotPasswordRequest{Email: email}, nil, http.StatusAccepted)
}

func (c *Client) ResetPassword(ctx context.Context, token, password string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/reset-password",
		ResetPasswordRequest{Token: token, Password: password}, nil, http.StatusNoContent)
}

func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	return c.do(ctx, http.MethodPost, "/v1/auth/change-password",
		ChangePasswordRequest{CurrentPassword: current, NewPassword: next}, nil, http.StatusNoContent)
}

func (c *Client) Bootstrap(ctx context.Context, req BootstrapRequest) (BootstrapResponse, error) {
	var resp BootstrapResponse
	err := c.do(ctx, http.MethodPost, "/v1/bootstrap", req, &resp, http.StatusCreated)
	return resp, err
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body, target any,
	expectedStatus int,
) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		var apiErr ErrorResponse
		if json.Unmarshal(bodyBytes, &apiErr) == nil && apiErr.Error != "" {
			return &APIError{
				StatusCode:  resp.StatusCode,
				Code:        apiErr.Error,
				Description: apiErr.ErrorDescription,
			}
		}
		return &APIError{StatusCode: resp.StatusCode, Code: "unexpected_status"}
	}

	if target == nil {
		return nil
	}
	if err := json.Unmarshal(bodyBytes, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
