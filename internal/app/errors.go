// Package app implements the business logic of the note store.
package app

import "fmt"

// ValidationError reports a missing or empty required field. The transport
// layer maps it to a 400 response carrying Message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// errMissingField mirrors the wording the API has always used for absent
// required body fields.
func errMissingField(field string) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf("missing `%s` in request body", field)}
}
