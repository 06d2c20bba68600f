// Package gazetteer provides the static financial reference tables.
package gazetteer

import "fmt"

// Error represents a failure to build or load the reference tables.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
