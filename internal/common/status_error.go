package common

import "fmt"

// StatusError is a transport failure that did carry an HTTP response.
// Message holds the server-supplied error message when one was present in
// the body; it is empty otherwise. The absence of a StatusError in an error
// chain means no response was received at all.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("status %d", e.StatusCode)
}
