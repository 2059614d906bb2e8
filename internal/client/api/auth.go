package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/noteskeeper/internal/client/models"
)

// Login exchanges credentials for a token pair. No authentication header
// is sent.
func (c *Client) Login(ctx context.Context, username, password string) (models.TokenPair, error) {
	payload := models.LoginRequest{Username: username, Password: password}
	return do[models.TokenPair](ctx, c, http.MethodPost, "/auth/token/", payload, nil)
}

// Register creates a new account and returns the created user.
// It does not authenticate the session.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return do[models.User](ctx, c, http.MethodPost, "/auth/register/", req, nil)
}

// RefreshToken trades a refresh token for a fresh token pair.
func (c *Client) RefreshToken(ctx context.Context, refresh string) (models.TokenPair, error) {
	payload := models.RefreshRequest{Refresh: refresh}
	return do[models.TokenPair](ctx, c, http.MethodPost, "/auth/token/refresh/", payload, nil)
}

// UserInfo fetches the profile of the user the access token belongs to.
func (c *Client) UserInfo(ctx context.Context, token string) (models.User, error) {
	return do[models.User](ctx, c, http.MethodGet, "/auth/userinfo/", nil, bearerHeader(token))
}

// ChangePassword submits a password change for the authenticated user.
// An empty 2xx body is treated as success with a synthesized confirmation,
// the same convention the delete endpoint uses.
func (c *Client) ChangePassword(ctx context.Context, token string, req models.ChangePasswordRequest) (models.MessageResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return models.MessageResponse{}, &Error{Kind: KindEncodingError, Message: err.Error()}
	}

	data, err := c.request(ctx, http.MethodPost, "/auth/change-password/", body, bearerHeader(token))
	if err != nil {
		return models.MessageResponse{}, err
	}

	if len(data) == 0 {
		return models.MessageResponse{Detail: "Password changed successfully"}, nil
	}

	var msg models.MessageResponse
	if err := json.Unmarshal(data, &msg); err != nil {
		return models.MessageResponse{}, &Error{Kind: KindDecodingError, Message: err.Error()}
	}
	return msg, nil
}
