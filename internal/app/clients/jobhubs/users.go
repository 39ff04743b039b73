package jobhubs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobhubs/backoffice/internal/app/models"
	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
)

// UsersClient handles upstream operations for users.
//
// The upstream path shapes are irregular and fixed: creation goes through
// the signup endpoint, updates are POSTs to the user path, and deletion
// has its own /delete suffix.
type UsersClient struct {
	client *Client
}

// NewUsersClient creates a new users client
func NewUsersClient(client *Client) *UsersClient {
	return &UsersClient{client: client}
}

// List fetches the full user collection, newest first.
func (c *UsersClient) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := c.client.get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return reverse(users), nil
}

// GetByID fetches one user's profile, including nested pays and listings.
func (c *UsersClient) GetByID(ctx context.Context, id int64) (*models.User, error) {
	var user models.User
	err := c.client.get(ctx, fmt.Sprintf("/users/%d", id), &user)
	if err != nil {
		if reqErr, ok := apperrors.AsRequestError(err); ok && reqErr.Status == http.StatusNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create registers a new user through the signup endpoint.
func (c *UsersClient) Create(ctx context.Context, input interface{}) error {
	return c.client.do(ctx, http.MethodPost, "/auth/signup", input, nil)
}

// Update sends partial fields for an existing user. The upstream update
// endpoint is a POST, not a PATCH.
func (c *UsersClient) Update(ctx context.Context, id int64, patch interface{}) error {
	return c.client.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d", id), patch, nil)
}

// Delete removes a user.
func (c *UsersClient) Delete(ctx context.Context, id int64) error {
	return c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d/delete", id), nil, nil)
}
