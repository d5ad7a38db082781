package models

// ErrorMessageItem is a single human-readable message inside an API error
// body.
type ErrorMessageItem struct {
	Message string `json:"message"`
}

// ErrorResponse is the structured error body returned by the write API and
// by the remote case service. The shape mirrors the remote service's own
// error format so callers see one error vocabulary end to end.
type ErrorResponse struct {
	Title         string             `json:"title"`
	StatusCode    int                `json:"status_code"`
	Detail        string             `json:"detail"`
	ErrorMessages []ErrorMessageItem `json:"error_messages"`
}
