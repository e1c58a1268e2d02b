package dto

// ErrorResponse represents a generic error response body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
