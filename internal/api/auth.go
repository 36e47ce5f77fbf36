package api

import (
	"context"
	"net/http"
)

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token. The client does not
// retain the token; callers decide where it lives.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	response := struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}{}
	request := authRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", request, &response); err != nil {
		return "", err
	}
	return response.AccessToken, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, email, password string) error {
	request := authRequest{Email: email, Password: password}
	return c.do(ctx, http.MethodPost, "/auth/signup", request, nil)
}
