package domain

import "net/http"

// VerificationResult is the uniform outcome relayed to callers of the
// credential and token checks. StatusCode is the HTTP status to answer with.
type VerificationResult struct {
	IsVerified bool   `json:"isVerified"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}

// Shared results for the hot verification path.
var (
	TokenVerified = VerificationResult{IsVerified: true, Message: "Token is verified", StatusCode: http.StatusOK}
	TokenDead     = VerificationResult{IsVerified: false, Message: "Token is dead", StatusCode: http.StatusUnauthorized}
)

// StoreFault is the error returned alongside a zero result when the document
// store could not answer. It is the only error type the services return, so
// a negative verification is never confused with an infrastructure fault.
type StoreFault struct {
	Err error
}

func (f *StoreFault) Error() string { return f.Err.Error() }
func (f *StoreFault) Unwrap() error { return f.Err }

// Result renders the fault in the shape callers relay outward.
func (f *StoreFault) Result() VerificationResult {
	return VerificationResult{
		IsVerified: false,
		Message:    f.Err.Error(),
		StatusCode: http.StatusInternalServerError,
	}
}
