package inspect

import (
	"errors"
	"fmt"
)

// ErrNoFields is returned when a record has no fields to lay out.
var ErrNoFields = errors.New("record has no fields")

// Reason classifies why a field specification was rejected.
type Reason string

const (
	ReasonDuplicateName Reason = "duplicate_name"
	ReasonBadAlign      Reason = "alignment_not_power_of_two"
	ReasonBadSize       Reason = "non_positive_size"
)

// InvalidFieldError reports the first invalid field found during
// validation. When it is returned, no offsets were computed.
type InvalidFieldError struct {
	Field  string
	Reason Reason
}

func (e *InvalidFieldError) Error() string {
	switch e.Reason {
	case ReasonDuplicateName:
		return fmt.Sprintf("field %q: duplicate name", e.Field)
	case ReasonBadAlign:
		return fmt.Sprintf("field %q: alignment must be a power of two", e.Field)
	case ReasonBadSize:
		return fmt.Sprintf("field %q: size must be at least 1", e.Field)
	default:
		return fmt.Sprintf("field %q: invalid", e.Field)
	}
}

// Is reports whether target matches this error. An empty Field or Reason
// in the target acts as a wildcard, so errors.Is(err,
// &InvalidFieldError{Reason: ReasonBadAlign}) matches any field.
func (e *InvalidFieldError) Is(target error) bool {
	t, ok := target.(*InvalidFieldError)
	if !ok {
		return false
	}
	if t.Field != "" && t.Field != e.Field {
		return false
	}
	return t.Reason == "" || t.Reason == e.Reason
}
