package bluesky

import "fmt"

// AuthError represents a failed authentication attempt. It carries the
// platform's error identifier and raw body so the operator can diagnose
// the failure.
type AuthError struct {
	StatusCode int    // HTTP status of the failed attempt
	Name       string // Platform error identifier (e.g. "AuthFactorTokenRequired")
	Body       string // Raw response body
}

func (e *AuthError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("authentication failed (%d %s): %s", e.StatusCode, e.Name, e.Body)
	}
	return fmt.Sprintf("authentication failed (%d): %s", e.StatusCode, e.Body)
}

// RequestError represents a non-success response from an upload or record
// write. These are recoverable per-item failures for the caller.
type RequestError struct {
	Operation  string // "upload blob" or "create record"
	StatusCode int    // HTTP status
	Body       string // Raw response body
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s failed (%d): %s", e.Operation, e.StatusCode, e.Body)
}
