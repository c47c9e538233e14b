package llm

import "fmt"

// Failure taxonomy surfaced to the user. Every error leaving this package
// (or a provider adapter) is one of these four types, so callers can
// branch with errors.As and every class prints a distinct message.

// AuthenticationError means the credential is missing or was rejected.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return "authentication error: " + e.Message
}

// InvalidRequestError means the input was rejected, either locally
// before any network call or by the provider (HTTP 400/404/422).
type InvalidRequestError struct {
	Parameter string // Offending parameter, empty if not attributable
	Message   string
}

func (e *InvalidRequestError) Error() string {
	if e.Parameter != "" {
		return fmt.Sprintf("invalid request: parameter %q: %s", e.Parameter, e.Message)
	}
	return "invalid request: " + e.Message
}

// RateLimitError means the provider throttled the request (HTTP 429).
// The call is not retried.
type RateLimitError struct {
	Message string
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded: " + e.Message
}

// TransportError covers network failures, timeouts, provider 5xx
// responses and malformed provider replies.
type TransportError struct {
	Message string
	Err     error // Underlying cause, may be nil
}

func (e *TransportError) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("transport error: %s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return fmt.Sprintf("transport error: %v", e.Err)
	}
	return "transport error: " + e.Message
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
