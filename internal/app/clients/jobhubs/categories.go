package jobhubs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobhubs/backoffice/internal/app/models"
)

// CategoriesClient handles upstream operations for categories.
// Note the singular upstream path: /categorie.
type CategoriesClient struct {
	client *Client
}

// NewCategoriesClient creates a new categories client
func NewCategoriesClient(client *Client) *CategoriesClient {
	return &CategoriesClient{client: client}
}

// List fetches the full category collection, newest first.
func (c *CategoriesClient) List(ctx context.Context) ([]models.Categorie, error) {
	var categories []models.Categorie
	if err := c.client.get(ctx, "/categorie", &categories); err != nil {
		return nil, err
	}
	return reverse(categories), nil
}

// Create adds a new category.
func (c *CategoriesClient) Create(ctx context.Context, input interface{}) error {
	return c.client.do(ctx, http.MethodPost, "/categorie", input, nil)
}

// Update sends partial fields for an existing category.
func (c *CategoriesClient) Update(ctx context.Context, id int64, patch interface{}) error {
	return c.client.do(ctx, http.MethodPatch, fmt.Sprintf("/categorie/%d", id), patch, nil)
}

// Delete removes a category.
func (c *CategoriesClient) Delete(ctx context.Context, id int64) error {
	return c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/categorie/%d", id), nil, nil)
}
