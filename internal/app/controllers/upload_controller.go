package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobhubs/backoffice/internal/app/models/dto"
	"github.com/jobhubs/backoffice/internal/middleware"
	"github.com/jobhubs/backoffice/internal/pkg/filestorage"
)

// UploadController forwards validated image uploads to the platform's
// file-hosting API.
type UploadController struct {
	storage filestorage.FileStorage
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.FileStorage) *UploadController {
	return &UploadController{storage: storage}
}

// UploadImage validates and forwards one image file
// @Summary Upload image
// @Description Accepts one image (JPG, PNG, GIF, WebP, max 5MB) and returns its hosted URL
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 200 {object} dto.APIResponse{data=dto.UploadResponse} "Hosted file URL"
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 415 {object} dto.ErrorResponse "Unsupported file type"
// @Router /uploads [post]
func (c *UploadController) UploadImage(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		bindingError(ctx, "Invalid upload", "multipart field 'file' is required")
		return
	}

	url, err := c.storage.SaveImage(ctx.Request.Context(), fileHeader)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.UploadResponse{URL: url}))
}
