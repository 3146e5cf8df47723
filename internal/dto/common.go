package dto

// ErrorBody is the payload of the uniform error envelope.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse is the envelope returned for any failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewErrorResponse builds the error envelope for a status and message.
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Message: message, Status: status}}
}

// StatusResponse is the marker object returned by delete operations.
type StatusResponse struct {
	Status string `json:"status"`
}
