package openaccess

import (
	"context"
	"net/http"
	"sync"
)

// sessionStore holds the opaque session token issued at sign-in. The
// token is written once per successful SignIn and read by every
// request, so access is lock-protected.
type sessionStore struct {
	sync.Mutex

	token string
}

func (s *sessionStore) get() string {
	s.Lock()
	defer s.Unlock()
	return s.token
}

func (s *sessionStore) set(token string) {
	s.Lock()
	defer s.Unlock()
	s.token = token
}

type signInRequest struct {
	UserName    string `json:"user_name"`
	Password    string `json:"password"`
	DirectoryID string `json:"directory_id"`
}

type signInResponse struct {
	SessionToken string `json:"session_token"`
}

// SignIn authenticates against the OpenAccess service and stores the
// returned session token for all subsequent requests. Calling it again
// simply refreshes the token.
//
// Tokens are opaque and never inspected client-side; an expired token
// surfaces as an ordinary [ServerError] on the next call, and no
// automatic re-authentication is attempted.
func (c *Client) SignIn(ctx context.Context, username, password, directoryID string) error {
	url := c.endpoint("authentication", versionAuthentication).String()

	req, err := c.newRequest(ctx, http.MethodPost, url, signInRequest{
		UserName:    username,
		Password:    password,
		DirectoryID: directoryID,
	})
	if err != nil {
		return err
	}

	var result signInResponse
	if err := c.doJSON(req, &result); err != nil {
		return err
	}

	c.session.set(result.SessionToken)

	return nil
}
