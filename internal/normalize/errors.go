package normalize

import "fmt"

// PatchError reports a chat-refinement patch that could not be applied.
// Callers log it and keep the existing Job; a bad patch never tears down the
// session.
type PatchError struct {
	Message string
	Cause   error
}

func (e *PatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("patch rejected: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("patch rejected: %s", e.Message)
}

func (e *PatchError) Unwrap() error {
	return e.Cause
}
