package trainee

import "fmt"

// ErrTypeMismatch indicates a value passed to AddAssessment that is not one
// of the recognized assessment variants.
type ErrTypeMismatch struct {
	Kind string
}

func (e *ErrTypeMismatch) Error() string {
	return fmt.Sprintf("incorrect assessment type %q", e.Kind)
}
