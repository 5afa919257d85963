package dto

// ErrorResponse is the uniform error body: a single error message string
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// MessageResponse represents a plain success message
type MessageResponse struct {
	Message string `json:"message"`
}
