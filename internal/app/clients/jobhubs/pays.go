package jobhubs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobhubs/backoffice/internal/app/models"
)

// PaysClient handles upstream operations for countries.
type PaysClient struct {
	client *Client
}

// NewPaysClient creates a new pays client
func NewPaysClient(client *Client) *PaysClient {
	return &PaysClient{client: client}
}

// List fetches the full country collection, newest first.
func (c *PaysClient) List(ctx context.Context) ([]models.Pays, error) {
	var pays []models.Pays
	if err := c.client.get(ctx, "/pays", &pays); err != nil {
		return nil, err
	}
	return reverse(pays), nil
}

// Create adds a new country.
func (c *PaysClient) Create(ctx context.Context, input interface{}) error {
	return c.client.do(ctx, http.MethodPost, "/pays", input, nil)
}

// Update sends partial fields for an existing country.
func (c *PaysClient) Update(ctx context.Context, id int64, patch interface{}) error {
	return c.client.do(ctx, http.MethodPatch, fmt.Sprintf("/pays/%d", id), patch, nil)
}

// Delete removes a country.
func (c *PaysClient) Delete(ctx context.Context, id int64) error {
	return c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/pays/%d", id), nil, nil)
}
