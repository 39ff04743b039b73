package jobhubs

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jobhubs/backoffice/internal/app/models"
)

// ActivitesClient handles upstream operations for professional listings.
// Creation and the photo/expertise sub-resources hang off the owning
// user's path; updates and deletes address the listing directly.
type ActivitesClient struct {
	client *Client
}

// NewActivitesClient creates a new activites client
func NewActivitesClient(client *Client) *ActivitesClient {
	return &ActivitesClient{client: client}
}

// List fetches the full listing collection, newest first.
func (c *ActivitesClient) List(ctx context.Context) ([]models.Activite, error) {
	var activites []models.Activite
	if err := c.client.get(ctx, "/activites", &activites); err != nil {
		return nil, err
	}
	return reverse(activites), nil
}

// CreateForUser adds a listing owned by the given user.
func (c *ActivitesClient) CreateForUser(ctx context.Context, userID int64, input interface{}) error {
	return c.client.do(ctx, http.MethodPost, fmt.Sprintf("/users/%d/activities", userID), input, nil)
}

// Update sends partial fields for an existing listing.
func (c *ActivitesClient) Update(ctx context.Context, id int64, patch interface{}) error {
	return c.client.do(ctx, http.MethodPatch, fmt.Sprintf("/activites/%d", id), patch, nil)
}

// Delete removes a listing.
func (c *ActivitesClient) Delete(ctx context.Context, id int64) error {
	return c.client.do(ctx, http.MethodDelete, fmt.Sprintf("/activites/%d", id), nil, nil)
}

// AddPhotos attaches already-hosted image URLs to a listing.
func (c *ActivitesClient) AddPhotos(ctx context.Context, userID, activiteID int64, imageURLs []string) error {
	return c.client.do(ctx, http.MethodPost,
		fmt.Sprintf("/users/%d/activities/%d/photos", userID, activiteID), imageURLs, nil)
}

// AddExpertise attaches an expertise tag to a listing.
func (c *ActivitesClient) AddExpertise(ctx context.Context, userID, activiteID int64, expertise string) error {
	body := map[string]string{"expertise": expertise}
	return c.client.do(ctx, http.MethodPost,
		fmt.Sprintf("/users/%d/activities/%d/expertise", userID, activiteID), body, nil)
}
