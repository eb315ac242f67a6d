package toolbox

import (
	"errors"

	"github.com/hcminh/folio/internal/llm"
)

var (
	// ErrValidation is matched by every *ValidationError
	ErrValidation = errors.New("invalid input")

	// ErrBusy is returned when a request is already in flight for the tool
	ErrBusy = errors.New("request already in progress")

	// ErrDisabled is returned when no credential is set
	ErrDisabled = errors.New("toolbox disabled: no API key configured")
)

// MsgUnknown is shown for errors that carry no user-facing text.
const MsgUnknown = "An unknown error occurred."

// ValidationError reports a blank or out-of-range input field. Key names the
// localized message; Message is the English fallback.
type ValidationError struct {
	Field   string
	Key     string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DisplayError returns the text shown to the user for err.
func DisplayError(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	if msg, ok := llm.UserMessage(err); ok {
		return msg
	}
	return MsgUnknown
}
