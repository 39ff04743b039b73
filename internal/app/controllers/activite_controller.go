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

// ActiviteController handles professional-listing operations
type ActiviteController struct {
	activiteService *services.ActiviteService
}

// NewActiviteController creates a new ActiviteController
func NewActiviteController(activiteService *services.ActiviteService) *ActiviteController {
	return &ActiviteController{activiteService: activiteService}
}

// ListActivites returns the filtered, paginated listing collection
// @Summary List activites
// @Tags activites
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term (id, function, region, brand, phone)"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Activite page"
// @Router /activites [get]
func (c *ActiviteController) ListActivites(ctx *gin.Context) {
	search, page, size := helpers.ParseListParams(ctx, listing.ActivitesPageSize)

	result, err := c.activiteService.List(ctx.Request.Context(), search, page, size)
	if err != nil && result.CollectionSize == 0 {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(listResponse(result)))
}

// CreateActivite adds a listing under its owning user
// @Summary Create activite
// @Tags activites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateActiviteRequest true "Listing information"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Activite created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /activites [post]
func (c *ActiviteController) CreateActivite(ctx *gin.Context) {
	var req dto.CreateActiviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid activite data", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.activiteService.Create(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Activité créée avec succès",
	}))
}

// UpdateActivite applies a partial update
// @Summary Update activite
// @Tags activites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activite ID"
// @Param request body dto.UpdateActiviteRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Activite updated"
// @Router /activites/{id} [patch]
func (c *ActiviteController) UpdateActivite(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateActiviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid activite data", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.activiteService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Activité mise à jour avec succès",
	}))
}

// DeleteActivite removes a listing
// @Summary Delete activite
// @Tags activites
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activite ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Activite deleted"
// @Router /activites/{id} [delete]
func (c *ActiviteController) DeleteActivite(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.activiteService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Activité supprimée avec succès",
	}))
}

// AddPhotos attaches hosted image URLs to a listing
// @Summary Attach photos
// @Description Attaches already-hosted image URLs to a listing through its owning user
// @Tags activites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activite ID"
// @Param request body dto.AddPhotosRequest true "Owner and photo URLs"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Photos attached"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /activites/{id}/photos [post]
func (c *ActiviteController) AddPhotos(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddPhotosRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid photos payload", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.activiteService.AddPhotos(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Photos ajoutées avec succès",
	}))
}

// AddExpertise attaches an expertise tag to a listing
// @Summary Attach expertise
// @Tags activites
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activite ID"
// @Param request body dto.AddExpertiseRequest true "Owner and expertise"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Expertise attached"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /activites/{id}/expertise [post]
func (c *ActiviteController) AddExpertise(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddExpertiseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid expertise payload", middleware.DescribeBindingError(err))
		return
	}

	if err := c.activiteService.AddExpertise(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Expertise ajoutée avec succès",
	}))
}

// ExportActivites streams the filtered listing collection as CSV
// @Summary Export activites
// @Tags activites
// @Produce text/csv
// @Security BearerAuth
// @Param search query string false "Search term"
// @Success 200 {string} string "CSV file"
// @Failure 409 {object} dto.ErrorResponse "Nothing to export"
// @Router /activites/export [get]
func (c *ActiviteController) ExportActivites(ctx *gin.Context) {
	headers, rows, err := c.activiteService.Export(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	serveCSV(ctx, "activites", headers, rows)
}
