// Package types holds the JSON envelopes every API response is wrapped in.
package types

// SuccessEnvelope wraps any 2xx payload under a "data" key.
type SuccessEnvelope struct {
	Data any `json:"data"`
}

// APIError is the client-facing shape of a failed request. Details carries
// structured context (for example the offending field) and is omitted when
// the error code does not allow it.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// ErrorEnvelope wraps an APIError under an "error" key.
type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
