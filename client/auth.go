package client

import (
	"context"
	"errors"
	"sync"
)

// User is the authenticated account returned by the auth service.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type authResponse struct {
	User    *User `json:"user"`
	Session *struct {
		AccessToken string `json:"access_token"`
	} `json:"session"`
}

// Login authenticates against the auth service. The session is carried via
// the HTTP-only cookie on the client's jar; when the service also returns a
// bearer token it is attached to subsequent requests.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	payload := map[string]string{"email": email, "password": password}

	var resp authResponse
	if err := c.postJSON(ctx, "/auth/login", payload, &resp); err != nil {
		return nil, err
	}
	if resp.Session != nil {
		c.setBearerToken(resp.Session.AccessToken)
	}
	return resp.User, nil
}

// Signup registers a new account. The auth service sends an email
// confirmation; the session becomes usable once the callback completes.
func (c *Client) Signup(ctx context.Context, email, password, name string) (*User, error) {
	payload := map[string]string{"email": email, "password": password, "name": name}

	var resp authResponse
	if err := c.postJSON(ctx, "/auth/signup", payload, &resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Logout ends the server-side session and drops the local bearer token.
func (c *Client) Logout(ctx context.Context) error {
	err := c.postJSON(ctx, "/auth/logout", map[string]string{}, nil)
	c.setBearerToken("")
	return err
}

// CurrentUser fetches the authenticated user. An unauthenticated session
// returns (nil, nil) rather than an error.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var resp struct {
		User *User `json:"user"`
	}
	if err := c.get(ctx, "/auth/me", nil, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == 401 {
			return nil, nil
		}
		return nil, err
	}
	return resp.User, nil
}

// Session is an explicit session context replacing browser-global auth
// state: initialize with Init (fetch current user), authenticate with
// Login, tear down with Clear.
type Session struct {
	client *Client

	mu   sync.RWMutex
	user *User
}

// NewSession creates a session bound to the given client.
func NewSession(c *Client) *Session {
	return &Session{client: c}
}

// Init resolves the current user from any existing credentials. A missing
// or expired session leaves the user unset without error.
func (s *Session) Init(ctx context.Context) error {
	user, err := s.client.CurrentUser(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Login authenticates and records the resulting user.
func (s *Session) Login(ctx context.Context, email, password string) error {
	user, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.user = user
	s.mu.Unlock()
	return nil
}

// Clear logs out and forgets the user. The logout call is best-effort; the
// local session state is cleared regardless.
func (s *Session) Clear(ctx context.Context) error {
	err := s.client.Logout(ctx)
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return err
}

// User returns the authenticated user, or nil when signed out.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}
