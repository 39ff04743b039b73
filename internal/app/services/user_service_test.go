package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobhubs/backoffice/internal/app/models"
	"github.com/jobhubs/backoffice/internal/app/models/dto"
	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
)

type fakeUsersClient struct {
	items     []models.User
	listErr   error
	listCalls int

	createErr error
	updateErr error
	deleteErr error
}

func (f *fakeUsersClient) List(ctx context.Context) ([]models.User, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeUsersClient) GetByID(ctx context.Context, id int64) (*models.User, error) {
	for i := range f.items {
		if f.items[i].ID == id {
			return &f.items[i], nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUsersClient) Create(ctx context.Context, input interface{}) error {
	return f.createErr
}

func (f *fakeUsersClient) Update(ctx context.Context, id int64, patch interface{}) error {
	return f.updateErr
}

func (f *fakeUsersClient) Delete(ctx context.Context, id int64) error {
	return f.deleteErr
}

func someUsers() []models.User {
	return []models.User{
		{ID: 3, Nom: "Diallo", Prenom: "Aminata", Email: "aminata@example.com"},
		{ID: 2, Nom: "Ndiaye", Prenom: "Moussa", Email: "moussa@example.com"},
		{ID: 1, Nom: "Sow", Prenom: "Fatou", Email: "fatou@example.com"},
	}
}

func TestUserServiceList(t *testing.T) {
	client := &fakeUsersClient{items: someUsers()}
	svc := NewUserService(client)

	result, err := svc.List(context.Background(), "", 1, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, client.listCalls)
	assert.Len(t, result.Page.Items, 3)
	assert.Equal(t, 3, result.CollectionSize)
	assert.Empty(t, result.StaleError)
}

func TestUserServiceListServesStaleSnapshotOnFailure(t *testing.T) {
	client := &fakeUsersClient{items: someUsers()}
	svc := NewUserService(client)

	_, err := svc.List(context.Background(), "", 1, 0)
	require.NoError(t, err)

	client.listErr = errors.New("502: Bad Gateway")

	result, err := svc.List(context.Background(), "", 1, 0)
	require.Error(t, err)

	// The previous collection is still served, tagged with the error.
	assert.Len(t, result.Page.Items, 3)
	assert.Equal(t, "502: Bad Gateway", result.StaleError)
}

func TestUserServiceListNoSearchMatch(t *testing.T) {
	svc := NewUserService(&fakeUsersClient{items: someUsers()})

	result, err := svc.List(context.Background(), "zzzz", 1, 0)
	require.NoError(t, err)

	assert.True(t, result.NoSearchMatch())
	assert.Zero(t, result.Page.TotalItems)
	assert.Equal(t, 3, result.CollectionSize)
}

func TestUserServiceCreateRefetchesOnce(t *testing.T) {
	client := &fakeUsersClient{items: someUsers()}
	svc := NewUserService(client)

	err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Nom: "Ba", Prenom: "Omar", Email: "omar@example.com",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, client.listCalls)
}

func TestUserServiceCreateFailureLeavesSnapshotUntouched(t *testing.T) {
	client := &fakeUsersClient{items: someUsers()}
	svc := NewUserService(client)

	_, err := svc.List(context.Background(), "", 1, 0)
	require.NoError(t, err)

	client.createErr = errors.New("email already in use")
	err = svc.Create(context.Background(), &dto.CreateUserRequest{})
	require.Error(t, err)

	// No refetch happened and the snapshot still holds the old collection.
	assert.Equal(t, 1, client.listCalls)
	assert.Len(t, svc.snap.current(), 3)
}

func TestUserServiceDeleteRefetchesOnce(t *testing.T) {
	client := &fakeUsersClient{items: someUsers()}
	svc := NewUserService(client)

	require.NoError(t, svc.Delete(context.Background(), 2))
	assert.Equal(t, 1, client.listCalls)
}

func TestUserServiceExport(t *testing.T) {
	svc := NewUserService(&fakeUsersClient{items: someUsers()})

	headers, rows, err := svc.Export(context.Background(), "aminata")
	require.NoError(t, err)

	assert.Equal(t, userExportHeaders, headers)
	require.Len(t, rows, 1)
	assert.Equal(t, "3", rows[0][0])
	assert.Equal(t, "Diallo", rows[0][1])
	// Missing optional fields render as N/A.
	assert.Equal(t, "N/A", rows[0][4])
}

func TestUserServiceExportEmptyCollection(t *testing.T) {
	svc := NewUserService(&fakeUsersClient{})

	_, _, err := svc.Export(context.Background(), "")
	assert.ErrorIs(t, err, apperrors.ErrNoExportData)
}
