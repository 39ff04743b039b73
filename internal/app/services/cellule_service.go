package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/jobhubs/backoffice/internal/app/models"
	"github.com/jobhubs/backoffice/internal/app/models/dto"
	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
	"github.com/jobhubs/backoffice/internal/pkg/csvexport"
	"github.com/jobhubs/backoffice/internal/pkg/listing"
	"github.com/jobhubs/backoffice/internal/pkg/logger"
)

// cellulesClient is the slice of the upstream API the cellule service
// needs. Creation is addressed to the leader's user path.
type cellulesClient interface {
	List(ctx context.Context) ([]models.Cellule, error)
	Create(ctx context.Context, creatorUserID int64, input interface{}) error
	Update(ctx context.Context, id int64, patch interface{}) error
	Delete(ctx context.Context, id int64) error
}

// leaderResolver checks that a leader reference points at a real user.
type leaderResolver interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

var celluleSearchFields = []listing.Field[models.Cellule]{
	func(c models.Cellule) string { return strconv.FormatInt(c.ID, 10) },
	func(c models.Cellule) string { return c.Name },
	func(c models.Cellule) string { return c.LocationDesc },
	func(c models.Cellule) string {
		if c.ContactPhone != nil {
			return *c.ContactPhone
		}
		return ""
	},
	func(c models.Cellule) string {
		if c.Leader != nil {
			return c.Leader.Nom + " " + c.Leader.Prenom + " " + c.Leader.Email
		}
		return ""
	},
}

var celluleExportHeaders = []string{
	"ID", "Nom de la cellule", "Leader - Nom", "Leader - Prénom",
	"Leader - Email", "Localisation", "Lien de localisation",
	"Heure de début", "Téléphone de contact", "Statut", "Date de création",
}

// CelluleService handles the cellule collection. Leader references are
// resolved against the user collection before any upstream write.
type CelluleService struct {
	cellules cellulesClient
	users    leaderResolver
	snap     snapshot[models.Cellule]
}

// NewCelluleService creates a new cellule service instance
func NewCelluleService(cellules cellulesClient, users leaderResolver) *CelluleService {
	return &CelluleService{cellules: cellules, users: users}
}

func (s *CelluleService) refresh(ctx context.Context) ([]models.Cellule, error) {
	items, err := s.cellules.List(ctx)
	if err != nil {
		return s.snap.current(), err
	}
	s.snap.replace(items)
	return s.snap.current(), nil
}

// resolveLeader fails with ErrLeaderNotFound when the referenced user
// does not exist upstream.
func (s *CelluleService) resolveLeader(ctx context.Context, leaderID int64) error {
	if _, err := s.users.GetByID(ctx, leaderID); err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return apperrors.ErrLeaderNotFound
		}
		return err
	}
	return nil
}

// List refetches, filters and paginates the cellule collection.
func (s *CelluleService) List(ctx context.Context, search string, page, size int) (ListResult[models.Cellule], error) {
	items, err := s.refresh(ctx)
	if size <= 0 {
		size = listing.CellulesPageSize
	}

	filtered := listing.Filter(items, search, celluleSearchFields...)
	result := ListResult[models.Cellule]{
		Page:           listing.Paginate(filtered, page, size),
		CollectionSize: len(items),
	}
	if err != nil {
		result.StaleError = err.Error()
	}
	return result, err
}

// Create validates the leader reference, then adds the cellule under the
// leader's user path and refetches once.
func (s *CelluleService) Create(ctx context.Context, req *dto.CreateCelluleRequest) error {
	if err := s.resolveLeader(ctx, req.LeaderPersonID); err != nil {
		return err
	}
	if err := s.cellules.Create(ctx, req.LeaderPersonID, req); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("Refetch after cellule creation failed")
	}
	return nil
}

// Update forwards a partial update, re-resolving the leader when the
// patch reassigns it, then refetches once.
func (s *CelluleService) Update(ctx context.Context, id int64, req *dto.UpdateCelluleRequest) error {
	if req.LeaderPersonID != nil {
		if err := s.resolveLeader(ctx, *req.LeaderPersonID); err != nil {
			return err
		}
	}
	if err := s.cellules.Update(ctx, id, req); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("cellule_id", id).Msg("Refetch after cellule update failed")
	}
	return nil
}

// Delete removes a cellule, then refetches once.
func (s *CelluleService) Delete(ctx context.Context, id int64) error {
	if err := s.cellules.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("cellule_id", id).Msg("Refetch after cellule deletion failed")
	}
	return nil
}

// Export builds CSV rows for the filtered cellule collection, joining in
// the leader's identity the way the console's spreadsheet did.
func (s *CelluleService) Export(ctx context.Context, search string) ([]string, [][]string, error) {
	items, err := s.refresh(ctx)
	filtered := listing.Filter(items, search, celluleSearchFields...)
	if len(filtered) == 0 {
		if err != nil {
			return nil, nil, err
		}
		return nil, nil, apperrors.ErrNoExportData
	}

	rows := make([][]string, 0, len(filtered))
	for _, c := range filtered {
		leaderNom, leaderPrenom, leaderEmail := "N/A", "N/A", "N/A"
		if c.Leader != nil {
			leaderNom = csvexport.OptionalString(c.Leader.Nom)
			leaderPrenom = csvexport.OptionalString(c.Leader.Prenom)
			leaderEmail = csvexport.OptionalString(c.Leader.Email)
		}
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			csvexport.OptionalString(c.Name),
			leaderNom,
			leaderPrenom,
			leaderEmail,
			csvexport.OptionalString(c.LocationDesc),
			csvexport.Optional(c.LocationLink),
			csvexport.Optional(c.StartTime),
			csvexport.Optional(c.ContactPhone),
			csvexport.ActiveFlag(c.IsActive),
			csvexport.Date(c.CreatedAt),
		})
	}
	return celluleExportHeaders, rows, nil
}
