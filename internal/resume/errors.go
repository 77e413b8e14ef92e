package resume

import "fmt"

// ValidationError represents a missing or unusable customization input.
// A resume built without a job description would be silently useless, so
// these failures surface to the caller instead of defaulting.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}
