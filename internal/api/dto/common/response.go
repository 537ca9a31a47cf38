package common

// ErrorResponse is the wire format for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}

// Standard error messages returned to clients. Internal details are logged,
// never sent over the wire.
const (
	MsgRateLimited    = "Too many requests. Please try again later."
	MsgInternalServer = "Internal server error"
	MsgInvalidBody    = "Invalid request body"
)
