package dto

import "time"

// APIResponse is the standard success envelope for API endpoints.
type APIResponse struct {
	Success   bool         `json:"success" example:"true"`
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp" example:"2026-08-28T12:01:05.123Z"`
}

// NewAPIResponse creates a success envelope around data.
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Success:   true,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// SuccessResponse represents a bare acknowledgement message.
type SuccessResponse struct {
	Message string `json:"message"`
}

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	PageSize    int `json:"pageSize"`
	TotalItems  int `json:"totalItems"`
}

// ListResponse is the generic shape of every collection endpoint: the
// filtered page, its pagination meta, and the two list-level states the
// console distinguishes (collection genuinely empty vs. search found
// nothing). StaleError is set when the latest refetch failed and the
// items shown are the previous snapshot.
type ListResponse struct {
	Items          interface{}    `json:"items"`
	Pagination     PaginationInfo `json:"pagination"`
	CollectionSize int            `json:"collectionSize"`
	NoSearchMatch  bool           `json:"noSearchMatch"`
	StaleError     string         `json:"staleError,omitempty"`
}
