package http

// ValidationError represents one validation failure detail.
type ValidationError struct {
	Code    string `json:"code,omitempty" example:"ERR_REQUIRED"`
	Field   string `json:"field,omitempty" example:"name"`
	Message string `json:"message,omitempty" example:"Name is required"`
}

// ValidationFailure is the 400 response body for rejected requests.
type ValidationFailure struct {
	Errors interface{} `json:"errors"`
}
