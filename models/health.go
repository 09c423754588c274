package models

// HealthCheckResponse is the response for the health check endpoint
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
