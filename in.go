package construct

import (
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type enumRule struct {
	validation.InRule
	allowed []any
}

// In returns a rule that checks if a value is one of the allowed values.
// The generated OpenAPI property carries them as its enum.
func In(values ...any) Rule {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("'%v'", v)
	}
	return &enumRule{
		InRule:  validation.In(values...).Error("must be one of " + strings.Join(quoted, ", ")),
		allowed: values,
	}
}

// Validate appends the offending value to the engine's error so rejections
// name both what was allowed and what was supplied.
func (r *enumRule) Validate(value any) error {
	if err := r.InRule.Validate(value); err != nil {
		return fmt.Errorf("%s got '%v'", err, value)
	}
	return nil
}

func (r *enumRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Enum = r.allowed
	return nil
}
