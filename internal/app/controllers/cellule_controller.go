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

// CelluleController handles cellule operations
type CelluleController struct {
	celluleService *services.CelluleService
}

// NewCelluleController creates a new CelluleController
func NewCelluleController(celluleService *services.CelluleService) *CelluleController {
	return &CelluleController{celluleService: celluleService}
}

// ListCellules returns the filtered, paginated cellule collection
// @Summary List cellules
// @Tags cellules
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term (id, name, leader, location, phone)"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Cellule page"
// @Router /cellules [get]
func (c *CelluleController) ListCellules(ctx *gin.Context) {
	search, page, size := helpers.ParseListParams(ctx, listing.CellulesPageSize)

	result, err := c.celluleService.List(ctx.Request.Context(), search, page, size)
	if err != nil && result.CollectionSize == 0 {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(listResponse(result)))
}

// CreateCellule adds a cellule
// @Summary Create cellule
// @Description Validates the leader reference against the user collection before forwarding
// @Tags cellules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCelluleRequest true "Cellule information"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Cellule created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 422 {object} dto.ErrorResponse "Leader does not exist"
// @Router /cellules [post]
func (c *CelluleController) CreateCellule(ctx *gin.Context) {
	var req dto.CreateCelluleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid cellule data", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.celluleService.Create(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Cellule créée avec succès",
	}))
}

// UpdateCellule applies a partial update
// @Summary Update cellule
// @Tags cellules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cellule ID"
// @Param request body dto.UpdateCelluleRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Cellule updated"
// @Failure 422 {object} dto.ErrorResponse "Leader does not exist"
// @Router /cellules/{id} [patch]
func (c *CelluleController) UpdateCellule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCelluleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid cellule data", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.celluleService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Cellule mise à jour avec succès",
	}))
}

// DeleteCellule removes a cellule
// @Summary Delete cellule
// @Tags cellules
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cellule ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Cellule deleted"
// @Router /cellules/{id} [delete]
func (c *CelluleController) DeleteCellule(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.celluleService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Cellule supprimée avec succès",
	}))
}

// ExportCellules streams the filtered cellule collection as CSV
// @Summary Export cellules
// @Tags cellules
// @Produce text/csv
// @Security BearerAuth
// @Param search query string false "Search term"
// @Success 200 {string} string "CSV file"
// @Failure 409 {object} dto.ErrorResponse "Nothing to export"
// @Router /cellules/export [get]
func (c *CelluleController) ExportCellules(ctx *gin.Context) {
	headers, rows, err := c.celluleService.Export(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	serveCSV(ctx, "cellules", headers, rows)
}
