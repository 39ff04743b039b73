package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/jobhubs/backoffice/internal/middleware"
	"github.com/jobhubs/backoffice/internal/pkg/apperrors"
)

func handleError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	middleware.HandleAPIError(c, err)
	return rec
}

func TestHandleAPIErrorUpstreamStatusPassthrough(t *testing.T) {
	rec := handleError(apperrors.NewRequestError(http.StatusServiceUnavailable,
		"Service Unavailable", "maintenance en cours"))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "UPS_002")
	assert.Contains(t, rec.Body.String(), "maintenance en cours")
}

func TestHandleAPIErrorUpstreamNotFound(t *testing.T) {
	rec := handleError(apperrors.NewRequestError(http.StatusNotFound, "Not Found", ""))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_001")
}

func TestHandleAPIErrorClampsNonErrorStatus(t *testing.T) {
	rec := handleError(apperrors.NewRequestError(http.StatusFound, "Found", ""))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "UPS_002")
}

func TestHandleAPIErrorInvalidCredentials(t *testing.T) {
	rec := handleError(apperrors.ErrInvalidCredentials)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTH_001")
}
