package backend

import (
	"context"
	"net/http"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
	"github.com/IngFreddyRosales/pokemon-frontend/pkg/dto"
)

func (c *Client) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	var resp dto.TokenResponse
	if err := c.doJSON(ctx, http.MethodPost, "auth/login", "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) Register(ctx context.Context, req dto.RegisterRequest) error {
	return c.doJSON(ctx, http.MethodPost, "auth/register", "", req, nil)
}

// Me resolves the user behind a bearer token. A rejected or expired token
// surfaces as an error; callers treat that the same as "no user".
func (c *Client) Me(ctx context.Context, token string) (*models.User, error) {
	var user models.User
	if err := c.doJSON(ctx, http.MethodGet, "auth/me", token, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
