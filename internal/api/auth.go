package api

import (
	"context"

	"github.com/codguard/codguard/internal/session"
)

// LoginRequest is the credential payload for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest is the registration payload for /auth/signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role,omitempty"`
}

type loginResponse struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// SignupResult is the identity created by /auth/signup.
type SignupResult struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// VerifiedUser is the identity confirmed by /auth/verify.
type VerifiedUser struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}

// Login exchanges credentials for a session. The returned session is not
// persisted; callers decide whether to save it.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, error) {
	var resp loginResponse
	if err := c.post(ctx, "/auth/login", LoginRequest{Email: email, Password: password}, &resp); err != nil {
		return nil, err
	}

	// Later requests on this client carry the fresh token.
	c.token = resp.Token

	return &session.Session{
		Token:  resp.Token,
		UserID: resp.UserID,
		Email:  resp.Email,
		Name:   resp.Name,
		Role:   resp.Role,
	}, nil
}

// Signup registers a new operator account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*SignupResult, error) {
	var result SignupResult
	if err := c.post(ctx, "/auth/signup", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Verify checks the attached bearer token against the backend and returns
// the identity it belongs to.
func (c *Client) Verify(ctx context.Context) (*VerifiedUser, error) {
	var user VerifiedUser
	if err := c.get(ctx, "/auth/verify", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
