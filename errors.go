package construct

import (
	"fmt"
	"reflect"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationErrors maps field names to their validation errors, as reported
// by the full validator. It is an alias for [validation.Errors] from
// ozzo-validation and implements the error interface with a readable,
// field-sorted string representation.
type ValidationErrors = validation.Errors

// NoSchemaError is returned by Build when no schema has been registered for
// the target type.
type NoSchemaError struct {
	Type reflect.Type
}

func (e *NoSchemaError) Error() string {
	return fmt.Sprintf("no schema registered for type %s", e.Type)
}

// InvalidKeysError is returned by the fallback validator when a required key
// is missing. Expected holds the schema's required field names, Found the
// keys actually supplied.
type InvalidKeysError struct {
	Expected []string
	Found    []string
}

func (e *InvalidKeysError) Error() string {
	return fmt.Sprintf("invalid keys: expected [%s] to be present, found [%s]",
		strings.Join(e.Expected, ", "), strings.Join(e.Found, ", "))
}

// ConstructionError is the fatal error raised by MustBuild, naming the
// target type and wrapping the original reason.
type ConstructionError struct {
	Type   string
	Reason error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("unable to construct %s: %v", e.Type, e.Reason)
}

func (e *ConstructionError) Unwrap() error { return e.Reason }
