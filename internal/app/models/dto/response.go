package dto

import "time"

// APIResponse is the standard success envelope for API endpoints.
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// SuccessResponse carries the transient success notification text that
// accompanies every completed mutation.
type SuccessResponse struct {
	Message string `json:"message" example:"Course added successfully!"`
}
