package marketing

import "fmt"

// ParseError means model output broke its structural contract, e.g. the
// reply was not a JSON array.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse model output: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError rejects one decoded element of model output.
type ValidationError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("suggestion %d: %s", e.Index, e.Reason)
	}
	return fmt.Sprintf("suggestion %d: %s: %s", e.Index, e.Field, e.Reason)
}
