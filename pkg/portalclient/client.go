package portalclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout bounds every portal request. Slow requests fail rather
// than hang a screen.
const DefaultTimeout = 5 * time.Second

const (
	patientPrefix   = "/api/patient"
	physicianPrefix = "/api/physician"
)

// APIError is a non-success response from the portal: either a non-2xx
// status or a 200 envelope with success=false.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("portal: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("portal: request failed with status %d", e.StatusCode)
}

// Client talks to the portal API. The token attached to a request is chosen
// by the request path alone: /api/patient/* carries the patient token,
// /api/physician/* the physician token, anything else goes out anonymous.
//
// Any 401 clears BOTH stored tokens and fires the logout hook, regardless of
// which role made the call.
type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      CredentialStore

	// onLogout runs after a 401 has cleared the stores. The host app uses
	// it to navigate back to the landing page.
	onLogout func()
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithLogoutHook(fn func()) Option {
	return func(c *Client) { c.onLogout = fn }
}

func NewClient(baseURL string, creds CredentialStore, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
		creds:      creds,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// roleForPath picks the credential by URL prefix.
func roleForPath(path string) (Role, bool) {
	switch {
	case strings.HasPrefix(path, patientPrefix):
		return RolePatient, true
	case strings.HasPrefix(path, physicianPrefix):
		return RolePhysician, true
	}
	return "", false
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, req, res interface{}) error {
	var body *bytes.Buffer
	if req != nil {
		body = &bytes.Buffer{}
		if err := json.NewEncoder(body).Encode(req); err != nil {
			return err
		}
	}

	u := c.baseURL + path
	if len(params) != 0 {
		u += "?" + params.Encode()
	}
	var httpReq *http.Request
	var err error
	if body != nil {
		httpReq, err = http.NewRequestWithContext(ctx, method, u, body)
	} else {
		httpReq, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return err
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if role, ok := roleForPath(path); ok {
		if token := c.creds.Token(role); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	httpRes, err := c.httpClient.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpRes.Body.Close()

	if httpRes.StatusCode == http.StatusUnauthorized {
		c.logout()
		return &APIError{StatusCode: httpRes.StatusCode, Message: "session expired"}
	}

	var envelope struct {
		Success *bool  `json:"success"`
		Message string `json:"message"`
	}
	raw, err := readAll(httpRes)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if httpRes.StatusCode >= 400 {
			return &APIError{StatusCode: httpRes.StatusCode}
		}
		return fmt.Errorf("portal: decode response: %w", err)
	}
	if httpRes.StatusCode >= 400 || (envelope.Success != nil && !*envelope.Success) {
		return &APIError{StatusCode: httpRes.StatusCode, Message: envelope.Message}
	}
	if res != nil {
		return json.Unmarshal(raw, res)
	}
	return nil
}

func readAll(res *http.Response) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(res.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// logout clears both credentials and notifies the host app. Clearing both is
// deliberate: one expired session invalidates the whole browser state.
func (c *Client) logout() {
	c.creds.ClearAll()
	if c.onLogout != nil {
		c.onLogout()
	}
}

func (c *Client) get(ctx context.Context, path string, res interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, res)
}

func (c *Client) post(ctx context.Context, path string, req, res interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, req, res)
}

func (c *Client) put(ctx context.Context, path string, req, res interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, req, res)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// -- Auth --

type Credentials struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

// Login authenticates the given role and stores its token on success. The
// other role's session is untouched.
func (c *Client) Login(ctx context.Context, role Role, creds Credentials) error {
	if !role.Valid() {
		return fmt.Errorf("portal: unknown role %q", role)
	}
	var res loginResponse
	if err := c.post(ctx, "/api/"+string(role)+"/login", creds, &res); err != nil {
		return err
	}
	if res.Token == "" {
		return &APIError{StatusCode: http.StatusOK, Message: "login response missing token"}
	}
	return c.creds.SetToken(role, res.Token)
}

// Logout drops one role's session locally.
func (c *Client) Logout(role Role) error {
	return c.creds.Clear(role)
}
