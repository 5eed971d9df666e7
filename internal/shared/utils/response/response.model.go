package response

// ErrorResponse is the uniform error payload for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a human-readable confirmation for requests that
// have no other payload.
type MessageResponse struct {
	Message string `json:"message"`
}
