package construct

import (
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type lengthRule struct {
	validation.LengthRule
	min, max int
}

// Length returns a rule that checks if a string's rune length is within the
// specified range.
func Length(lo, hi int) Rule {
	return &lengthRule{validation.RuneLength(lo, hi), lo, hi}
}

func (r *lengthRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	hi := uint64(r.max)
	ref.Value.MinLength = uint64(r.min)
	ref.Value.MaxLength = &hi
	return nil
}
