package dto

import "time"

// ErrorResponse represents the standard error response structure: a
// human-readable message as the primary signal, with the underlying store
// error detail carried as a secondary field for diagnostics.
type ErrorResponse struct {
	Success   bool      `json:"success" example:"false"`
	Message   string    `json:"message" example:"Student not found"`
	Error     string    `json:"error,omitempty" example:"no rows in result set"`
	Timestamp time.Time `json:"timestamp"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string, err error) *ErrorResponse {
	resp := &ErrorResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now(),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp
}
