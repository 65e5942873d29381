package models

// SeedRequest is the body of POST /seed.
type SeedRequest struct {
	UID string `json:"uid" validate:"required"`
}

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	OK bool `json:"ok"`
}
