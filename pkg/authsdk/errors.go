package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// APIError is a non-success answer from the service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tokenkeep: status %d", e.StatusCode)
	}
	return fmt.Sprintf("tokenkeep: status %d: %s", e.StatusCode, e.Message)
}

// RejectedError is returned by RequestToken when the service checked the
// credentials and refused them.
type RejectedError struct {
	Result VerificationResult
}

func (e *RejectedError) Error() string {
	return "tokenkeep: credentials rejected: " + e.Result.Message
}

// parseErrorResponse builds an *APIError. Bodies are either a
// VerificationResult, plain text, or empty.
func parseErrorResponse(resp *http.Response, body []byte) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	if strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		var res VerificationResult
		if err := json.Unmarshal(body, &res); err == nil && res.Message != "" {
			apiErr.Message = res.Message
			return apiErr
		}
	}

	apiErr.Message = strings.TrimSpace(string(body))
	return apiErr
}
