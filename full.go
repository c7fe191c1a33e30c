package construct

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FullValidator performs complete per-field validation, delegating rule
// evaluation to the ozzo-validation engine. For each schema field it checks:
// required key presence, value type against the field's [TypeTag], string
// [Format], and any extra [Rule]s. Violations are collected per field into
// [ValidationErrors].
//
// Duplicate input keys are merged last-wins before checking.
type FullValidator struct{}

var _ SchemaValidator = FullValidator{}

// Compile converts raw into a schema handle, rejecting malformed schemas
// (empty or duplicate field names).
func (FullValidator) Compile(raw any) (*Schema, error) {
	return compileSchema(raw, checkRaw)
}

// Validate checks every schema field against cfg. It returns cfg unchanged
// on success; defaults for omitted optional fields are applied later, at
// construction time.
func (FullValidator) Validate(cfg Config, s *Schema) (Config, error) {
	errs := ValidationErrors{}
	for _, f := range s.fields {
		value, ok := cfg.Get(f.Name)
		if !ok {
			if f.Required {
				errs[f.Name] = validation.ErrRequired
			}
			continue
		}
		if err := checkType(f.Type, value); err != nil {
			errs[f.Name] = err
			continue
		}
		rules := f.Rules
		if f.Format != "" {
			rules = append([]Rule{Format(f.Format)}, rules...)
		}
		if len(rules) == 0 {
			continue
		}
		if err := validation.Validate(value, convertRules(rules...)...); err != nil {
			errs[f.Name] = err
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return cfg, nil
}

func (FullValidator) RenderDocs(s *Schema) string { return renderDocs(s) }

func (FullValidator) TypeSignature(s *Schema) string {
	return recordSignature(s, fullSignature)
}

func (FullValidator) FieldSignature(s *Schema, name string) (string, error) {
	f, ok := s.Field(name)
	if !ok {
		return "", fmt.Errorf("schema has no field %q", name)
	}
	return fullSignature(f.Type), nil
}

// convertRules translates our Rules into ozzo's.
func convertRules(rules ...Rule) []validation.Rule {
	vRules := make([]validation.Rule, len(rules))
	for i := range rules {
		vRules[i] = validation.Rule(rules[i])
	}
	return vRules
}
