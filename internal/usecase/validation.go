// Package usecase contains the application-specific business rules.
package usecase

import (
	"sort"
	"strings"
)

// FieldErrors maps form field names to their validation messages.
// Every field is validated independently, so a submission reports all
// failing fields at once rather than stopping at the first.
type FieldErrors map[string]string

// Error implements the error interface so a failed validation can flow
// through ordinary error returns.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return "invalid fields: " + strings.Join(fields, ", ")
}

// OrNil returns the error value the validation should produce: nil when
// no field failed.
func (e FieldErrors) OrNil() error {
	if len(e) == 0 {
		return nil
	}

	return e
}
