package extraction

import (
	"errors"
	"fmt"
)

// ErrNoJSONFound is returned when generated text contains no complete JSON object.
var ErrNoJSONFound = errors.New("no valid JSON found in the input string")

// ErrMalformedJSON matches any *MalformedJSONError via errors.Is.
var ErrMalformedJSON = errors.New("malformed JSON")

// MalformedJSONError reports a brace-delimited span that is not valid JSON.
type MalformedJSONError struct {
	Span  string
	Cause error
}

func (e *MalformedJSONError) Error() string {
	return fmt.Sprintf("malformed JSON in generated text: %v", e.Cause)
}

func (e *MalformedJSONError) Unwrap() error {
	return e.Cause
}

// Is lets errors.Is(err, ErrMalformedJSON) succeed.
func (e *MalformedJSONError) Is(target error) bool {
	return target == ErrMalformedJSON
}

// APICallError represents an error from the generative model
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// ValidationError represents bad input to the generator
type ValidationError struct {
	Message string
	Field   string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
