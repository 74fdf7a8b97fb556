package models

// ProbeResult reports the outcome of a connectivity check against the catalog
// backend. Details carries the response body or transport error on failure.
type ProbeResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
