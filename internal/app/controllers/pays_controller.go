package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobhubs/backoffice/internal/app/models/dto"
	"github.com/jobhubs/backoffice/internal/app/services"
	"github.com/jobhubs/backoffice/internal/middleware"
	"github.com/jobhubs/backoffice/internal/pkg/helpers"
	"github.com/jobhubs/backoffice/internal/pkg/listing"
)

// PaysController handles country reference operations
type PaysController struct {
	paysService *services.PaysService
}

// NewPaysController creates a new PaysController
func NewPaysController(paysService *services.PaysService) *PaysController {
	return &PaysController{paysService: paysService}
}

// ListPays returns the filtered, paginated pays collection
// @Summary List countries
// @Tags pays
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term (id, name, dial code)"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Pays page"
// @Router /pays [get]
func (c *PaysController) ListPays(ctx *gin.Context) {
	search, page, size := helpers.ParseListParams(ctx, listing.PaysPageSize)

	result, err := c.paysService.List(ctx.Request.Context(), search, page, size)
	if err != nil && result.CollectionSize == 0 {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(listResponse(result)))
}

// CreatePays adds a country
// @Summary Create country
// @Tags pays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaysRequest true "Country information"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Pays created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /pays [post]
func (c *PaysController) CreatePays(ctx *gin.Context) {
	var req dto.CreatePaysRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid pays data", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.paysService.Create(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Pays créé avec succès",
	}))
}

// UpdatePays applies a partial update
// @Summary Update country
// @Tags pays
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pays ID"
// @Param request body dto.UpdatePaysRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Pays updated"
// @Router /pays/{id} [patch]
func (c *PaysController) UpdatePays(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdatePaysRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid pays data", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.paysService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Pays mis à jour avec succès",
	}))
}

// DeletePays removes a country
// @Summary Delete country
// @Tags pays
// @Produce json
// @Security BearerAuth
// @Param id path int true "Pays ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Pays deleted"
// @Router /pays/{id} [delete]
func (c *PaysController) DeletePays(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.paysService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Pays supprimé avec succès",
	}))
}

// ExportPays streams the filtered pays collection as CSV
// @Summary Export countries
// @Tags pays
// @Produce text/csv
// @Security BearerAuth
// @Param search query string false "Search term"
// @Success 200 {string} string "CSV file"
// @Failure 409 {object} dto.ErrorResponse "Nothing to export"
// @Router /pays/export [get]
func (c *PaysController) ExportPays(ctx *gin.Context) {
	headers, rows, err := c.paysService.Export(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	serveCSV(ctx, "pays", headers, rows)
}
