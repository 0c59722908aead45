package authsdk

// GrantTypeToken is the grant the secret exchange expects.
const GrantTypeToken = "token"

// TokenDocument is an issued bearer token as served by GET /oauth/secret.
// TokenBirth and TokenDeath are Unix milliseconds.
type TokenDocument struct {
	ID         string   `json:"_id,omitempty"`
	ClientID   string   `json:"client_id"`
	Roles      []string `json:"roles"`
	Token      string   `json:"token"`
	TokenBirth int64    `json:"token_birth"`
	TokenDeath int64    `json:"token_death"`
}

// VerificationResult is the outcome of a credential or token check.
type VerificationResult struct {
	IsVerified bool   `json:"isVerified"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Database indicates the document store connection status
	Database string `json:"database"`
}
