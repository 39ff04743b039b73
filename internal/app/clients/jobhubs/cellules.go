package jobhubs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobhubs/backoffice/internal/app/models"
)

// CellulesClient handles upstream operations for cellules. Unlike the
// other resources, the cellule list comes wrapped in a {data:[...]}
// envelope and the mutation paths carry verb suffixes.
type CellulesClient struct {
	client *Client
}

// NewCellulesClient creates a new cellules client
func NewCellulesClient(client *Client) *CellulesClient {
	return &CellulesClient{client: client}
}

// celluleListEnvelope matches the upstream /cellules/all response shape.
type celluleListEnvelope struct {
	Data []models.Cellule `json:"data"`
}

// List fetches the full cellule collection.
func (c *CellulesClient) List(ctx context.Context) ([]models.Cellule, error) {
	var envelope celluleListEnvelope
	if err := c.client.get(ctx, "/cellules/all", &envelope); err != nil {
		return nil, err
	}
	if envelope.Data == nil {
		return []models.Cellule{}, nil
	}
	return envelope.Data, nil
}

// Create adds a cellule on behalf of the creating user.
func (c *CellulesClient) Create(ctx context.Context, creatorUserID int64, input interface{}) error {
	return c.client.do(ctx, http.MethodPost, fmt.Sprintf("/cellules/create/%d", creatorUserID), input, nil)
}

// Update sends partial fields for an existing cellule.
func (c *CellulesClient) Update(ctx context.Context, id int64, patch interface{}) error {
	return c.client.do(ctx, http.MethodPatch, fmt.Sprintf("/cellules/%d/update", id), patch, nil)
}

// Delete removes a cellule.
func (c *CellulesClient) Delete(ctx context.Context, id int64) error {
	return c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/cellules/%d/delete", id), nil, nil)
}
