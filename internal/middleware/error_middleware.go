package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jobhubs/backoffice/internal/app/models/dto"
	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
)

// HandleAPIError maps service and upstream errors onto the coded error
// envelope. Upstream rejections keep their original status so the
// console renders the platform's own message.
func HandleAPIError(c *gin.Context, err error) {
	if reqErr, ok := apperrors.AsRequestError(err); ok {
		status := reqErr.Status
		code := dto.ErrorCodeUpstreamRejected
		if status == http.StatusNotFound {
			code = dto.ErrorCodeResourceNotFound
		}
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		c.JSON(status, dto.APIResponse{
			Error: dto.NewErrorDetail(code, reqErr.Error()),
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Identifiants incorrects"),
		})
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeExpiredToken, "Token expired"),
		})
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInvalidToken, "Invalid token"),
		})
	case errors.Is(err, apperrors.ErrLeaderNotFound):
		c.JSON(http.StatusUnprocessableEntity, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceInvalid,
				"Le leader sélectionné n'existe pas").WithField("leaderPersonId"),
		})
	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrCategorieNotFound),
		errors.Is(err, apperrors.ErrPaysNotFound),
		errors.Is(err, apperrors.ErrCelluleNotFound),
		errors.Is(err, apperrors.ErrActiviteNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Resource not found"),
		})
	case errors.Is(err, apperrors.ErrNoExportData):
		c.JSON(http.StatusConflict, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeNoExportData, "Aucune donnée à exporter"),
		})
	case errors.Is(err, apperrors.ErrUnsupportedFileType):
		c.JSON(http.StatusUnsupportedMediaType, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed,
				"Type de fichier non supporté. Utilisez JPG, PNG, GIF ou WebP."),
		})
	case errors.Is(err, apperrors.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed,
				"Fichier trop volumineux. Maximum 5MB."),
		})
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeValidationFailed, err.Error()),
		})
	case errors.Is(err, apperrors.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeUpstreamUnavailable,
				"Le serveur JobHubs est injoignable"),
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.APIResponse{
			Error: dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"),
		})
	}
}
