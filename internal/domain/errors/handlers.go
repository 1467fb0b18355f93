package errors

// ErrorResponse defines the structure for error responses.
// Detail is either a message string or a list of FieldError.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// HealthResponse is returned by the liveness endpoint
type HealthResponse struct {
	Status string `json:"status"`
}
