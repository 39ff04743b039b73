package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobhubs/backoffice/internal/app/models/dto"
	"github.com/jobhubs/backoffice/internal/app/services"
	"github.com/jobhubs/backoffice/internal/pkg/csvexport"
	"github.com/jobhubs/backoffice/internal/pkg/logger"
)

// listResponse folds a service list result into the wire shape.
func listResponse[T any](result services.ListResult[T]) dto.ListResponse {
	return dto.ListResponse{
		Items: result.Page.Items,
		Pagination: dto.PaginationInfo{
			CurrentPage: result.Page.CurrentPage,
			TotalPages:  result.Page.TotalPages,
			PageSize:    result.Page.PageSize,
			TotalItems:  result.Page.TotalItems,
		},
		CollectionSize: result.CollectionSize,
		NoSearchMatch:  result.NoSearchMatch(),
		StaleError:     result.StaleError,
	}
}

// parseIDParam reads a positive numeric path parameter, writing the
// validation envelope itself on failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id < 1 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name).
			WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}

// serveCSV streams an export as a downloadable attachment.
func serveCSV(ctx *gin.Context, resource string, headers []string, rows [][]string) {
	filename := csvexport.Filename(resource, time.Now())
	ctx.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	ctx.Header("Content-Type", "text/csv; charset=utf-8")
	ctx.Status(http.StatusOK)

	if err := csvexport.Write(ctx.Writer, headers, rows); err != nil {
		// Headers are already gone; all we can do is log.
		logger.Error().Err(err).Str("resource", resource).Msg("CSV streaming failed")
	}
}

// bindingError writes the standard invalid-body envelope.
func bindingError(ctx *gin.Context, message, details string) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message).
		WithDetails(details)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}

// validationFailed writes the field-level validation envelope.
func validationFailed(ctx *gin.Context, errs *dto.ValidationErrors) {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, errs.First()).
		WithDetails(errs.Errors)
	ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
}
