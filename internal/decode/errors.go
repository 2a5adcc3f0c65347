package decode

import (
	"errors"
	"fmt"

	"github.com/JerelRocktaschel/jumpshot/internal/providers"
)

// FieldError reports a field that is missing or does not coerce to its target type.
// It matches providers.ErrDecode.
type FieldError struct {
	Entity string
	Field  string
	Raw    string
	Reason string
}

func (e *FieldError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("decode %s.%s: %s", e.Entity, e.Field, e.Reason)
	}
	return fmt.Sprintf("decode %s.%s: %s (raw=%q)", e.Entity, e.Field, e.Reason, e.Raw)
}

func (e *FieldError) Is(target error) bool {
	return target == providers.ErrDecode
}

// AsFieldError attempts to unwrap an error into a FieldError.
func AsFieldError(err error) (*FieldError, bool) {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr, true
	}
	return nil, false
}
