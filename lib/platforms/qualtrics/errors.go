package qualtrics

import "fmt"

// MissingParameterError reports a required parameter that is still absent
// or empty after defaults and caller overrides have been merged.
type MissingParameterError struct {
	Operation string
	Field     string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Operation, e.Field)
}

// VendorError is a business-logic failure reported by the remote API,
// either through the response envelope or a 4xx status.
type VendorError struct {
	Code    string
	Message string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("api error %s: %s", e.Code, e.Message)
}

// TransportError is a network or HTTP-layer failure: connection problems,
// 5xx responses, or 4xx responses without a parseable envelope.
type TransportError struct {
	// zero when the failure happened below the HTTP layer
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("transport failure (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("transport failure: %s", e.Message)
}
