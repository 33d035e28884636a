// Package models defines the data structures used throughout the application.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// The extraction result itself is NOT a typed struct — the model may omit
// any key, and the API contract distinguishes "absent" from "null", which
// Go structs cannot express. See the normalize package for the canonical
// ordered representation.
package models

import "encoding/json"

// ExtractResponse is the success envelope for POST /api/v1/datasheets/extract.
type ExtractResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`    // Canonical extraction result, keys in fixed order
	Summary string          `json:"summary"` // Human-readable markdown report
}

// ErrorResponse is the error envelope for all API errors: a single
// human-readable message under "error", paired with a non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Model   string `json:"model"`  // Configured extraction model
	AIKey   bool   `json:"ai_key"` // Whether an API key is configured
}
