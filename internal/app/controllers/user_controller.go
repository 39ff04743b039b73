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

// UserController handles user-related operations
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// ListUsers returns the filtered, paginated user collection
// @Summary List users
// @Description Returns one page of the user collection, filtered by the search term
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search term (id, name, email, country)"
// @Param page query int false "Page number (1-based)"
// @Success 200 {object} dto.APIResponse{data=dto.ListResponse} "User page"
// @Failure 502 {object} dto.ErrorResponse "Upstream API unreachable"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	search, page, size := helpers.ParseListParams(ctx, listing.UsersPageSize)

	result, err := c.userService.List(ctx.Request.Context(), search, page, size)
	if err != nil && result.CollectionSize == 0 {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(listResponse(result)))
}

// GetUserByID returns one user profile
// @Summary Get user by ID
// @Description Returns a user profile with its nested country and listings
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=models.User} "User profile"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [get]
func (c *UserController) GetUserByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	user, err := c.userService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(user))
}

// CreateUser registers a new user
// @Summary Create user
// @Description Validates and forwards a user registration, then refreshes the collection
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.APIResponse{data=dto.SuccessResponse} "User created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid user data", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.userService.Create(ctx.Request.Context(), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Utilisateur créé avec succès",
	}))
}

// UpdateUser applies a partial update
// @Summary Update user
// @Description Forwards a partial user update, then refreshes the collection
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Changed fields"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "User updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [patch]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid user data", middleware.DescribeBindingError(err))
		return
	}
	if errs := req.Validate(); errs.HasErrors() {
		validationFailed(ctx, errs)
		return
	}

	if err := c.userService.Update(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Utilisateur mis à jour avec succès",
	}))
}

// DeleteUser removes a user
// @Summary Delete user
// @Description Forwards a user deletion, then refreshes the collection
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "User deleted"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.userService.Delete(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Utilisateur supprimé avec succès",
	}))
}

// ExportUsers streams the filtered user collection as CSV
// @Summary Export users
// @Description Downloads the filtered user collection as a CSV attachment
// @Tags users
// @Produce text/csv
// @Security BearerAuth
// @Param search query string false "Search term"
// @Success 200 {string} string "CSV file"
// @Failure 409 {object} dto.ErrorResponse "Nothing to export"
// @Router /users/export [get]
func (c *UserController) ExportUsers(ctx *gin.Context) {
	search := ctx.Query("search")

	headers, rows, err := c.userService.Export(ctx.Request.Context(), search)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	serveCSV(ctx, "users", headers, rows)
}
