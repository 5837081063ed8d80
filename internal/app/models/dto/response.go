package dto

import "time"

// APIResponse is the standard success envelope: success plus data and/or
// count, optionally echoing the effective filter of a query endpoint.
type APIResponse struct {
	Success   bool        `json:"success" example:"true"`
	Message   string      `json:"message,omitempty" example:"Student inserted successfully"`
	Count     *int        `json:"count,omitempty" example:"5"`
	Filter    interface{} `json:"filter,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

// NewDataResponse creates a success response carrying a payload.
func NewDataResponse(data interface{}, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewListResponse creates a success response carrying a list and its count.
func NewListResponse(data interface{}, count int, message string) APIResponse {
	return APIResponse{
		Success:   true,
		Message:   message,
		Count:     &count,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// WithFilter echoes the effective filter parameters back to the caller.
func (r APIResponse) WithFilter(filter interface{}) APIResponse {
	r.Filter = filter
	return r
}

// BulkUpdateResult reports the outcome of an update-many operation.
// A SQL UPDATE reports a single rows-affected figure, so matched and
// modified always carry the same value.
type BulkUpdateResult struct {
	MatchedCount  int64 `json:"matchedCount" example:"3"`
	ModifiedCount int64 `json:"modifiedCount" example:"3"`
}

// DeleteResult reports the outcome of a delete-many operation.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount" example:"12"`
}
