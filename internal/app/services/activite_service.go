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

// activitesClient is the slice of the upstream API the activite service
// needs. Creation and the sub-resources are addressed through the owning
// user's path.
type activitesClient interface {
	List(ctx context.Context) ([]models.Activite, error)
	CreateForUser(ctx context.Context, userID int64, input interface{}) error
	Update(ctx context.Context, id int64, patch interface{}) error
	Delete(ctx context.Context, id int64) error
	AddPhotos(ctx context.Context, userID, activiteID int64, imageURLs []string) error
	AddExpertise(ctx context.Context, userID, activiteID int64, expertise string) error
}

var activiteSearchFields = []listing.Field[models.Activite]{
	func(a models.Activite) string { return strconv.FormatInt(a.ID, 10) },
	func(a models.Activite) string { return a.Fonction },
	func(a models.Activite) string { return a.Region },
	func(a models.Activite) string { return a.Marque },
	func(a models.Activite) string { return a.Description },
	func(a models.Activite) string { return a.Telephone },
}

var activiteExportHeaders = []string{
	"ID", "Fonction", "Région", "Marque", "Description", "Téléphone",
	"WhatsApp", "Tarif", "Disponibilité", "Catégorie", "Pays",
	"Date de création",
}

// ActiviteService handles the professional-listing collection plus its
// photo and expertise sub-operations.
type ActiviteService struct {
	activites activitesClient
	snap      snapshot[models.Activite]
}

// NewActiviteService creates a new activite service instance
func NewActiviteService(activites activitesClient) *ActiviteService {
	return &ActiviteService{activites: activites}
}

func (s *ActiviteService) refresh(ctx context.Context) ([]models.Activite, error) {
	items, err := s.activites.List(ctx)
	if err != nil {
		return s.snap.current(), err
	}
	s.snap.replace(items)
	return s.snap.current(), nil
}

// List refetches, filters and paginates the listing collection.
func (s *ActiviteService) List(ctx context.Context, search string, page, size int) (ListResult[models.Activite], error) {
	items, err := s.refresh(ctx)
	if size <= 0 {
		size = listing.ActivitesPageSize
	}

	filtered := listing.Filter(items, search, activiteSearchFields...)
	result := ListResult[models.Activite]{
		Page:           listing.Paginate(filtered, page, size),
		CollectionSize: len(items),
	}
	if err != nil {
		result.StaleError = err.Error()
	}
	return result, err
}

// Create adds a listing under its owning user, then refetches once.
func (s *ActiviteService) Create(ctx context.Context, req *dto.CreateActiviteRequest) error {
	if err := s.activites.CreateForUser(ctx, req.UserID, req); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("Refetch after activite creation failed")
	}
	return nil
}

// Update forwards a partial update, then refetches once.
func (s *ActiviteService) Update(ctx context.Context, id int64, req *dto.UpdateActiviteRequest) error {
	if err := s.activites.Update(ctx, id, req); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("activite_id", id).Msg("Refetch after activite update failed")
	}
	return nil
}

// Delete removes a listing, then refetches once.
func (s *ActiviteService) Delete(ctx context.Context, id int64) error {
	if err := s.activites.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("activite_id", id).Msg("Refetch after activite deletion failed")
	}
	return nil
}

// AddPhotos attaches hosted image URLs to a listing, then refetches once.
func (s *ActiviteService) AddPhotos(ctx context.Context, activiteID int64, req *dto.AddPhotosRequest) error {
	if err := s.activites.AddPhotos(ctx, req.UserID, activiteID, req.URLs); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("activite_id", activiteID).Msg("Refetch after photo attachment failed")
	}
	return nil
}

// AddExpertise attaches an expertise tag to a listing, then refetches once.
func (s *ActiviteService) AddExpertise(ctx context.Context, activiteID int64, req *dto.AddExpertiseRequest) error {
	if err := s.activites.AddExpertise(ctx, req.UserID, activiteID, req.Expertise); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("activite_id", activiteID).Msg("Refetch after expertise attachment failed")
	}
	return nil
}

// Export builds CSV rows for the filtered listing collection.
func (s *ActiviteService) Export(ctx context.Context, search string) ([]string, [][]string, error) {
	items, err := s.refresh(ctx)
	filtered := listing.Filter(items, search, activiteSearchFields...)
	if len(filtered) == 0 {
		if err != nil {
			return nil, nil, err
		}
		return nil, nil, apperrors.ErrNoExportData
	}

	rows := make([][]string, 0, len(filtered))
	for _, a := range filtered {
		categorieNom, paysNom := "N/A", "N/A"
		if a.Categorie != nil {
			categorieNom = a.Categorie.Nom
		}
		if a.Pays != nil {
			paysNom = a.Pays.Nom
		}
		rows = append(rows, []string{
			strconv.FormatInt(a.ID, 10),
			csvexport.OptionalString(a.Fonction),
			csvexport.OptionalString(a.Region),
			csvexport.OptionalString(a.Marque),
			csvexport.OptionalString(a.Description),
			csvexport.OptionalString(a.Telephone),
			csvexport.Optional(a.Whatsapp),
			csvexport.OptionalString(a.Tarif),
			csvexport.OptionalString(a.Disponibilite),
			categorieNom,
			paysNom,
			csvexport.Date(a.CreatedAt),
		})
	}
	return activiteExportHeaders, rows, nil
}
