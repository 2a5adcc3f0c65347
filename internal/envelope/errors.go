package envelope

import (
	"errors"

	"github.com/JerelRocktaschel/jumpshot/internal/providers"
)

// StructuralError reports a payload whose shape does not match its operation family.
// It matches providers.ErrDecode so callers see a single decode failure kind.
type StructuralError struct {
	Path   string
	Reason string
	Err    error
}

func (e *StructuralError) Error() string {
	msg := "malformed envelope at " + e.Path + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *StructuralError) Is(target error) bool {
	return target == providers.ErrDecode
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// AsStructuralError attempts to unwrap an error into a StructuralError.
func AsStructuralError(err error) (*StructuralError, bool) {
	var structErr *StructuralError
	if errors.As(err, &structErr) {
		return structErr, true
	}
	return nil, false
}
