package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jobhubs/backoffice/internal/app/models/dto"
	"github.com/jobhubs/backoffice/internal/app/services"
	"github.com/jobhubs/backoffice/internal/middleware"
)

// AuthController handles the admin session endpoints.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles admin authentication
// @Summary Admin login
// @Description Verifies the admin credential pair and issues a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.TokenResponse} "Token issued"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindingError(ctx, "Invalid login data", middleware.DescribeBindingError(err))
		return
	}

	token, err := c.authService.Login(&req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(token))
}

// Me returns the authenticated principal
// @Summary Current session
// @Description Returns the authenticated admin identity for the session token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse} "Session state"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	username := ctx.GetString(middleware.ContextKeyUsername)
	role := ctx.GetString(middleware.ContextKeyRole)

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.AuthResponse{
		IsAuthenticated: true,
		User: dto.AuthUser{
			Username: username,
			Role:     role,
		},
		Timestamp: time.Now(),
	}))
}

// Logout acknowledges session termination
// @Summary Logout
// @Description Acknowledges logout; the client discards its token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Logged out"
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	// Tokens are stateless; logout exists so the console has a single
	// place to clear its session.
	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{
		Message: "Déconnexion réussie",
	}))
}
