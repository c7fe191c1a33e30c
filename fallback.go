package construct

import "fmt"

// FallbackValidator is the degraded validator used when the full validation
// engine is not wanted. Compile performs no structural checking, and
// Validate checks only that every required key is present: wrong-typed
// values, extra keys, and duplicate keys all pass. Type signatures come from
// the closed tag vocabulary in [TypeTag]; unrecognized tags degrade to
// "any".
//
// The weaker guarantee is deliberate. Swapping this in for [FullValidator]
// must change nothing for callers of Build except strictness.
type FallbackValidator struct{}

var _ SchemaValidator = FallbackValidator{}

// Compile converts raw into a schema handle. It always succeeds for any
// RawSchema, malformed or not.
func (FallbackValidator) Compile(raw any) (*Schema, error) {
	return compileSchema(raw, nil)
}

// Validate succeeds iff every required field name is present as a key in
// cfg. Values are never inspected. On failure it returns an
// *InvalidKeysError carrying the required names and the keys found.
func (FallbackValidator) Validate(cfg Config, s *Schema) (Config, error) {
	present := make(map[string]bool, len(cfg))
	for _, kv := range cfg {
		present[kv.Key] = true
	}
	for _, name := range s.Required() {
		if !present[name] {
			return nil, &InvalidKeysError{Expected: s.Required(), Found: cfg.Keys()}
		}
	}
	return cfg, nil
}

func (FallbackValidator) RenderDocs(s *Schema) string { return renderDocs(s) }

func (FallbackValidator) TypeSignature(s *Schema) string {
	return recordSignature(s, signature)
}

func (FallbackValidator) FieldSignature(s *Schema, name string) (string, error) {
	f, ok := s.Field(name)
	if !ok {
		return "", fmt.Errorf("schema has no field %q", name)
	}
	return signature(f.Type), nil
}
