package intake

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field bounds enforced after normalization.
const (
	NameMinLen    = 2
	NameMaxLen    = 100
	MessageMinLen = 10
	MessageMaxLen = 5000
)

// User-facing validation messages. Wire-format stable; clients display them
// verbatim.
const (
	msgMissingFields = "Missing required fields"
	msgInvalidEmail  = "Invalid email format"
	msgNameLength    = "Name must be between 2 and 100 characters"
	msgMessageLength = "Message must be between 10 and 5000 characters"
)

var validate = validator.New()

// validateSanitized checks field format and bounds in order (email shape,
// then name length, then message length) and returns the first violation.
// Errors are not aggregated.
func validateSanitized(s *Sanitized) (string, bool) {
	if err := validate.Var(s.Email, "required,email"); err != nil {
		return msgInvalidEmail, false
	}
	if n := utf8.RuneCountInString(s.Name); n < NameMinLen || n > NameMaxLen {
		return msgNameLength, false
	}
	if n := utf8.RuneCountInString(s.Message); n < MessageMinLen || n > MessageMaxLen {
		return msgMessageLength, false
	}
	return "", true
}
