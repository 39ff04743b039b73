package helpers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobhubs/backoffice/internal/pkg/listing"
)

const (
	DefaultPage = 1 // Pages are 1-based
)

// ParseListParams extracts search and pagination parameters from a list
// request. defaultSize is the resource's fixed page size; clients may pass
// an explicit size within bounds.
func ParseListParams(c *gin.Context, defaultSize int) (search string, page, size int) {
	search = strings.TrimSpace(c.Query("search"))

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = DefaultPage
	}

	size = defaultSize
	if sizeStr := c.Query("size"); sizeStr != "" {
		parsed, err := strconv.Atoi(sizeStr)
		if err == nil && parsed > 0 && parsed <= listing.MaxPageSize {
			size = parsed
		}
	}

	return search, page, size
}
