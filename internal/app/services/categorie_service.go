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

// categoriesClient is the slice of the upstream API the categorie
// service needs.
type categoriesClient interface {
	List(ctx context.Context) ([]models.Categorie, error)
	Create(ctx context.Context, input interface{}) error
	Update(ctx context.Context, id int64, patch interface{}) error
	Delete(ctx context.Context, id int64) error
}

var categorieSearchFields = []listing.Field[models.Categorie]{
	func(c models.Categorie) string { return strconv.FormatInt(c.ID, 10) },
	func(c models.Categorie) string { return c.Nom },
}

var categorieExportHeaders = []string{
	"ID", "Nom", "Date de création", "Date de mise à jour",
}

// CategorieService handles the listing-category collection.
type CategorieService struct {
	categories categoriesClient
	snap       snapshot[models.Categorie]
}

// NewCategorieService creates a new categorie service instance
func NewCategorieService(categories categoriesClient) *CategorieService {
	return &CategorieService{categories: categories}
}

func (s *CategorieService) refresh(ctx context.Context) ([]models.Categorie, error) {
	items, err := s.categories.List(ctx)
	if err != nil {
		return s.snap.current(), err
	}
	s.snap.replace(items)
	return s.snap.current(), nil
}

// List refetches, filters and paginates the categorie collection.
func (s *CategorieService) List(ctx context.Context, search string, page, size int) (ListResult[models.Categorie], error) {
	items, err := s.refresh(ctx)
	if size <= 0 {
		size = listing.CategoriesPageSize
	}

	filtered := listing.Filter(items, search, categorieSearchFields...)
	result := ListResult[models.Categorie]{
		Page:           listing.Paginate(filtered, page, size),
		CollectionSize: len(items),
	}
	if err != nil {
		result.StaleError = err.Error()
	}
	return result, err
}

// Create adds a categorie, then refetches once.
func (s *CategorieService) Create(ctx context.Context, req *dto.CreateCategorieRequest) error {
	if err := s.categories.Create(ctx, req); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("Refetch after categorie creation failed")
	}
	return nil
}

// Update forwards a partial update, then refetches once.
func (s *CategorieService) Update(ctx context.Context, id int64, req *dto.UpdateCategorieRequest) error {
	if err := s.categories.Update(ctx, id, req); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("categorie_id", id).Msg("Refetch after categorie update failed")
	}
	return nil
}

// Delete removes a categorie, then refetches once.
func (s *CategorieService) Delete(ctx context.Context, id int64) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("categorie_id", id).Msg("Refetch after categorie deletion failed")
	}
	return nil
}

// Export builds CSV rows for the filtered categorie collection.
func (s *CategorieService) Export(ctx context.Context, search string) ([]string, [][]string, error) {
	items, err := s.refresh(ctx)
	filtered := listing.Filter(items, search, categorieSearchFields...)
	if len(filtered) == 0 {
		if err != nil {
			return nil, nil, err
		}
		return nil, nil, apperrors.ErrNoExportData
	}

	rows := make([][]string, 0, len(filtered))
	for _, c := range filtered {
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			csvexport.OptionalString(c.Nom),
			csvexport.Date(c.CreatedAt),
			csvexport.Date(c.UpdatedAt),
		})
	}
	return categorieExportHeaders, rows, nil
}
