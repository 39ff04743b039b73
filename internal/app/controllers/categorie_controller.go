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

// CategorieController handles listing-category operations
type CategorieController struct {
	categorieService *services.CategorieService
}

// NewCategorieController creates a new CategorieController
func NewCategorieController(categorieService *services.CategorieService) *CategorieController {
	return &CategorieController{categorieService: categorieService}
}

// ListCategories returns the filtered, paginated categorie collection
// @Summary List categories
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term (id, name)"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "Categorie page"
// @Router /categories [get]
func (c *CategorieController) ListCategories(ctx *gin.Context) {
	search, page, size := helpers.ParseListParams(ctx, listing.CategoriesPageSize)

	result, err := c.categorieService.List(ctx.Request.Context(), search, page, size)
	if err != nil && result.CollectionSize == 0 {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(listResponse(result)))
}

// CreateCategorie adds a categorie
// @Summary Create categorie
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateCategorieRequest true "Categorie information"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "Categorie created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /categories [post]
func (c *CategorieController) CreateCategorie(ctx *gin.Context) {
	var req dto.CreateCategorieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid categorie data", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.categorieService.Create(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Catégorie créée avec succès",
	}))
}

// UpdateCategorie applies a partial update
// @Summary Update categorie
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Categorie ID"
// @Param request body dto.UpdateCategorieRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Categorie updated"
// @Router /categories/{id} [patch]
func (c *CategorieController) UpdateCategorie(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateCategorieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid categorie data", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.categorieService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Catégorie mise à jour avec succès",
	}))
}

// DeleteCategorie removes a categorie
// @Summary Delete categorie
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Categorie ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Categorie deleted"
// @Router /categories/{id} [delete]
func (c *CategorieController) DeleteCategorie(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.categorieService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Catégorie supprimée avec succès",
	}))
}

// ExportCategories streams the filtered categorie collection as CSV
// @Summary Export categories
// @Tags categories
// @Produce text/csv
// @Security BearerAuth
// @Param search query string false "Search term"
// @Success 200 {string} string "CSV file"
// @Failure 409 {object} dto.ErrorResponse "Nothing to export"
// @Router /categories/export [get]
func (c *CategorieController) ExportCategories(ctx *gin.Context) {
	headers, rows, err := c.categorieService.Export(ctx.Request.Context(), ctx.Query("search"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	serveCSV(ctx, "categories", headers, rows)
}
