package entities

import "fmt"

// ProfileValidationError reports every invariant a profile violates.
// Callers map this to a client-facing rejection; it is never fatal to
// the process.
type ProfileValidationError struct {
	Issues []string
}

func (e *ProfileValidationError) Error() string {
	if len(e.Issues) == 1 {
		return fmt.Sprintf("invalid profile: %s", e.Issues[0])
	}
	return fmt.Sprintf("invalid profile: %d issues", len(e.Issues))
}
