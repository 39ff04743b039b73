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

// paysClient is the slice of the upstream API the pays service needs.
type paysClient interface {
	List(ctx context.Context) ([]models.Pays, error)
	Create(ctx context.Context, input interface{}) error
	Update(ctx context.Context, id int64, patch interface{}) error
	Delete(ctx context.Context, id int64) error
}

var paysSearchFields = []listing.Field[models.Pays]{
	func(p models.Pays) string { return strconv.FormatInt(p.ID, 10) },
	func(p models.Pays) string { return p.Nom },
	func(p models.Pays) string { return p.Code },
}

var paysExportHeaders = []string{
	"ID", "Nom", "Code", "Flag", "Date de création", "Date de mise à jour",
}

// PaysService handles the country reference collection.
type PaysService struct {
	pays paysClient
	snap snapshot[models.Pays]
}

// NewPaysService creates a new pays service instance
func NewPaysService(pays paysClient) *PaysService {
	return &PaysService{pays: pays}
}

func (s *PaysService) refresh(ctx context.Context) ([]models.Pays, error) {
	items, err := s.pays.List(ctx)
	if err != nil {
		return s.snap.current(), err
	}
	s.snap.replace(items)
	return s.snap.current(), nil
}

// List refetches, filters and paginates the pays collection.
func (s *PaysService) List(ctx context.Context, search string, page, size int) (ListResult[models.Pays], error) {
	items, err := s.refresh(ctx)
	if size <= 0 {
		size = listing.PaysPageSize
	}

	filtered := listing.Filter(items, search, paysSearchFields...)
	result := ListResult[models.Pays]{
		Page:           listing.Paginate(filtered, page, size),
		CollectionSize: len(items),
	}
	if err != nil {
		result.StaleError = err.Error()
	}
	return result, err
}

// Create adds a pays, then refetches once.
func (s *PaysService) Create(ctx context.Context, req *dto.CreatePaysRequest) error {
	if err := s.pays.Create(ctx, req); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Msg("Refetch after pays creation failed")
	}
	return nil
}

// Update forwards a partial update, then refetches once.
func (s *PaysService) Update(ctx context.Context, id int64, req *dto.UpdatePaysRequest) error {
	if err := s.pays.Update(ctx, id, req); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("pays_id", id).Msg("Refetch after pays update failed")
	}
	return nil
}

// Delete removes a pays, then refetches once.
func (s *PaysService) Delete(ctx context.Context, id int64) error {
	if err := s.pays.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.refresh(ctx); err != nil {
		logger.Warn().Err(err).Int64("pays_id", id).Msg("Refetch after pays deletion failed")
	}
	return nil
}

// Export builds CSV rows for the filtered pays collection.
func (s *PaysService) Export(ctx context.Context, search string) ([]string, [][]string, error) {
	items, err := s.refresh(ctx)
	filtered := listing.Filter(items, search, paysSearchFields...)
	if len(filtered) == 0 {
		if err != nil {
			return nil, nil, err
		}
		return nil, nil, apperrors.ErrNoExportData
	}

	rows := make([][]string, 0, len(filtered))
	for _, p := range filtered {
		rows = append(rows, []string{
			strconv.FormatInt(p.ID, 10),
			csvexport.OptionalString(p.Nom),
			csvexport.OptionalString(p.Code),
			csvexport.Optional(p.Flag),
			csvexport.Date(p.CreatedAt),
			csvexport.Date(p.UpdatedAt),
		})
	}
	return paysExportHeaders, rows, nil
}
