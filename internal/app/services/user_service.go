package services

import (
	"context"
	"strconv"

	"github.com/jobhubs/backoffice/internal/app/models"
	"github.com/jobhubs/backoffice/internal/app/models/dto"
	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
	"github.com/jobhubs/backoffice/internal/pkg/csvexport"
	"github.com/jobhubs/backoffice/internal/pkg/listing"
	"github.com/jobhubs/backoffice/internal/pkg/logger"
)

// usersClient is the slice of the upstream API the user service needs.
type usersClient interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Create(ctx context.Context, input interface{}) error
	Update(ctx context.Context, id int64, patch interface{}) error
	Delete(ctx context.Context, id int64) error
}

// userSearchFields are the values the console's user search box matches on.
var userSearchFields = []listing.Field[models.User]{
	func(u models.User) string { return strconv.FormatInt(u.ID, 10) },
	func(u models.User) string { return u.Nom },
	func(u models.User) string { return u.Prenom },
	func(u models.User) string { return u.Email },
	func(u models.User) string {
		if u.Pays != nil {
			return u.Pays.Nom
		}
		return ""
	},
}

var userExportHeaders = []string{
	"ID", "Nom", "Prénom", "Email", "Téléphone", "Rôle", "Pays",
	"Date de création",
}

// UserService handles the user collection: snapshot reads, mutations
// forwarded to the upstream API, and CSV export rows.
type UserService struct {
	users usersClient
	snap  snapshot[models.User]
}

// NewUserService creates a new user service instance
func NewUserService(users usersClient) *UserService {
	return &UserService{users: users}
}

// refresh fetches the full collection. On failure the previous snapshot
// is returned along with the error so callers can serve stale data.
func (s *UserService) refresh(ctx context.Context) ([]models.User, error) {
	items, err := s.users.List(ctx)
	if err != nil {
		return s.snap.current(), err
	}
	s.snap.replace(items)
	return s.snap.current(), nil
}

// List refetches, filters and paginates the user collection. When the
// refetch fails the page is built from the previous snapshot and the
// returned error doubles as the result's StaleError.
func (s *UserService) List(ctx context.Context, search string, page, size int) (ListResult[models.User], error) {
	items, err := s.refresh(ctx)
	if size <= 0 {
		size = listing.UsersPageSize
	}

	filtered := listing.Filter(items, search, userSearchFields...)
	result := ListResult[models.User]{
		Page:           listing.Paginate(filtered, page, size),
		CollectionSize: len(items),
	}
	if err != nil {
		result.StaleError = err.Error()
	}
	return result, err
}

// GetByID fetches one user profile with its nested pays and listings.
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// Create registers a new user, then refetches the collection once. The
// snapshot is never updated optimistically; a refetch failure after a
// successful creation is only logged.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) error {
	if err := s.users.Create(ctx, req); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("Refetch after user creation failed")
	}
	return nil
}

// Update forwards a partial update, then refetches once.
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) error {
	if err := s.users.Update(ctx, id, req); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("user_id", id).Msg("Refetch after user update failed")
	}
	return nil
}

// Delete removes a user, then refetches once.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("user_id", id).Msg("Refetch after user deletion failed")
	}
	return nil
}

// Export builds CSV rows for the filtered user collection.
func (s *UserService) Export(ctx context.Context, search string) ([]string, [][]string, error) {
	items, err := s.refresh(ctx)
	filtered := listing.Filter(items, search, userSearchFields...)
	if len(filtered) == 0 {
		if err != nil {
			return nil, nil, err
		}
		return nil, nil, apperrors.ErrNoExportData
	}

	rows := make([][]string, 0, len(filtered))
	for _, u := range filtered {
		paysNom := "N/A"
		if u.Pays != nil {
			paysNom = u.Pays.Nom
		}
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			csvexport.OptionalString(u.Nom),
			csvexport.OptionalString(u.Prenom),
			csvexport.OptionalString(u.Email),
			csvexport.Optional(u.PhoneNumber),
			string(u.Role),
			paysNom,
			csvexport.Date(u.CreatedAt),
		})
	}
	return userExportHeaders, rows, nil
}
