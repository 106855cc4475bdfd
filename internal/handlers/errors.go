package handlers

import "net/http"

// Messages of the short URL API error bodies.
const (
	MessageInvalidURL = "invalid url"
	MessageNotFound   = "No short URL found for the given input"
)

// APIError is the {"error": ...} body the short URL API answers failures
// with. It is always sent with status 200.
type APIError struct {
	Message string `json:"error"`
}

// NewAPIError creates an API error with the given message.
func NewAPIError(message string) *APIError {
	return &APIError{Message: message}
}

func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return http.StatusOK
}
