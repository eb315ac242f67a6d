package llm

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyResponse is returned when the model produced no text
	ErrEmptyResponse = errors.New("empty model response")

	// ErrMalformedResponse is returned when the text is not JSON or does not
	// match the requested schema
	ErrMalformedResponse = errors.New("malformed model response")

	// ErrNoCredential is returned when no API key is available
	ErrNoCredential = errors.New("no API key configured")
)

// TransportError covers network, auth and quota failures.
type TransportError struct {
	StatusCode int // 0 when no HTTP response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("model request failed (status %d): %v", e.StatusCode, e.Err)
	}
	return fmt.Sprintf("model request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// User-facing texts for model failures.
const (
	MsgEmptyResponse     = "The AI returned an empty response. Please try again."
	MsgMalformedResponse = "The AI returned an unexpected format. Please try again."
	MsgTransport         = "Failed to get a response from the AI. Please check your connection and try again."
)

// UserMessage returns the text to show for a client error, and false when
// err is not one this package produces.
func UserMessage(err error) (string, bool) {
	var te *TransportError
	switch {
	case err == nil:
		return "", false
	case errors.Is(err, ErrEmptyResponse):
		return MsgEmptyResponse, true
	case errors.Is(err, ErrMalformedResponse):
		return MsgMalformedResponse, true
	case errors.As(err, &te):
		return MsgTransport, true
	}
	return "", false
}
