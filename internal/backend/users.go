package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/IngFreddyRosales/pokemon-frontend/internal/models"
)

func (c *Client) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	var users []models.User
	if err := c.doJSON(ctx, http.MethodGet, "users/", token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateUser sends only the fields present in diff, mirroring the form-diffing
// the admin screen performs.
func (c *Client) UpdateUser(ctx context.Context, token string, userID int64, diff map[string]any) error {
	return c.doJSON(ctx, http.MethodPut, fmt.Sprintf("users/%d/", userID), token, diff, nil)
}
