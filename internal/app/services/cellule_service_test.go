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

type fakeCellulesClient struct {
	items     []models.Cellule
	listErr   error
	listCalls int

	createErr     error
	createCalls   int
	lastCreatorID int64
}

func (f *fakeCellulesClient) List(ctx context.Context) ([]models.Cellule, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeCellulesClient) Create(ctx context.Context, creatorUserID int64, input interface{}) error {
	f.createCalls++
	f.lastCreatorID = creatorUserID
	return f.createErr
}

func (f *fakeCellulesClient) Update(ctx context.Context, id int64, patch interface{}) error {
	return nil
}

func (f *fakeCellulesClient) Delete(ctx context.Context, id int64) error {
	return nil
}

func TestCelluleServiceCreateResolvesLeader(t *testing.T) {
	cellules := &fakeCellulesClient{}
	users := &fakeUsersClient{items: someUsers()}
	svc := NewCelluleService(cellules, users)

	err := svc.Create(context.Background(), &dto.CreateCelluleRequest{
		Name:           "Cellule Dakar Centre",
		LeaderPersonID: 2,
		LocationDesc:   "Immeuble Kebe",
	})
	require.NoError(t, err)

	// Creation is addressed to the leader's user path.
	assert.Equal(t, int64(2), cellules.lastCreatorID)
	assert.Equal(t, 1, cellules.createCalls)
	assert.Equal(t, 1, cellules.listCalls)
}

func TestCelluleServiceCreateUnknownLeader(t *testing.T) {
	cellules := &fakeCellulesClient{}
	svc := NewCelluleService(cellules, &fakeUsersClient{items: someUsers()})

	err := svc.Create(context.Background(), &dto.CreateCelluleRequest{
		Name:           "Cellule orpheline",
		LeaderPersonID: 999,
		LocationDesc:   "Nulle part",
	})
	assert.ErrorIs(t, err, apperrors.ErrLeaderNotFound)

	// Nothing reached the upstream API.
	assert.Zero(t, cellules.createCalls)
	assert.Zero(t, cellules.listCalls)
}

func TestCelluleServiceUpdateReassignedLeaderIsChecked(t *testing.T) {
	cellules := &fakeCellulesClient{}
	svc := NewCelluleService(cellules, &fakeUsersClient{items: someUsers()})

	missing := int64(42)
	err := svc.Update(context.Background(), 5, &dto.UpdateCelluleRequest{
		LeaderPersonID: &missing,
	})
	assert.ErrorIs(t, err, apperrors.ErrLeaderNotFound)
}

func TestCelluleServiceListStaleSnapshot(t *testing.T) {
	phone := "+221 78 000 11 22"
	cellules := &fakeCellulesClient{items: []models.Cellule{
		{ID: 1, Name: "Cellule A", LocationDesc: "Plateau", ContactPhone: &phone, IsActive: true},
	}}
	svc := NewCelluleService(cellules, &fakeUsersClient{})

	_, err := svc.List(context.Background(), "", 1, 0)
	require.NoError(t, err)

	cellules.listErr = errors.New("upstream API unreachable")
	result, err := svc.List(context.Background(), "", 1, 0)
	require.Error(t, err)
	assert.Len(t, result.Page.Items, 1)
	assert.NotEmpty(t, result.StaleError)
}

func TestCelluleServiceExportJoinsLeader(t *testing.T) {
	leader := models.User{ID: 2, Nom: "Ndiaye", Prenom: "Moussa", Email: "moussa@example.com"}
	cellules := &fakeCellulesClient{items: []models.Cellule{
		{ID: 1, Name: "Cellule A", LeaderPersonID: 2, LocationDesc: "Plateau", IsActive: true, Leader: &leader},
		{ID: 2, Name: "Cellule B", LeaderPersonID: 9, LocationDesc: "Médina", IsActive: false},
	}}
	svc := NewCelluleService(cellules, &fakeUsersClient{})

	headers, rows, err := svc.Export(context.Background(), "")
	require.NoError(t, err)

	assert.Equal(t, celluleExportHeaders, headers)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ndiaye", rows[0][2])
	assert.Equal(t, "Actif", rows[0][9])
	// A cellule without a resolvable leader exports N/A identity columns.
	assert.Equal(t, "N/A", rows[1][2])
	assert.Equal(t, "Inactif", rows[1][9])
}
