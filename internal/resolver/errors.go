package resolver

import (
	"fmt"
	"strings"
)

// StructuralError represents a field the resolver refuses to silently
// degrade, such as a contact name that is not a scalar.
type StructuralError struct {
	Field string
	Cause error
}

func (e *StructuralError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("structural error in contact field %q: %v", e.Field, e.Cause)
	}
	return fmt.Sprintf("structural error in contact field %q", e.Field)
}

func (e *StructuralError) Unwrap() error {
	return e.Cause
}

// AddressError reports the mandatory cover letter address fields that are
// missing. The downstream layout cannot render a postal address window
// without them, so this is a user-facing fail-fast error.
type AddressError struct {
	Missing []string
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("cover letter address incomplete: missing recipient fields: %s",
		strings.Join(e.Missing, ", "))
}
