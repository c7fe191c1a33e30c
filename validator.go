package construct

import "fmt"

// SchemaValidator turns raw field schemas into compiled handles, validates
// key/value configuration against them, and renders documentation and type
// metadata. Two implementations exist: [FullValidator] and
// [FallbackValidator]. They differ only in strictness and in the richness of
// the derived type signatures; callers of Build never observe which one is
// active beyond that.
type SchemaValidator interface {
	// Compile converts a RawSchema (or []Field) into a compiled handle.
	// Compiling an already compiled *Schema returns it unchanged.
	Compile(raw any) (*Schema, error)

	// Validate checks cfg against the schema and returns the accepted
	// config, or a structured error describing the violation.
	Validate(cfg Config, s *Schema) (Config, error)

	// RenderDocs produces a human-readable bullet list, one line per field,
	// in schema order.
	RenderDocs(s *Schema) string

	// TypeSignature derives a structural type expression for the whole
	// record.
	TypeSignature(s *Schema) string

	// FieldSignature derives the type expression for a single field.
	FieldSignature(s *Schema, name string) (string, error)
}

// active is the process-wide validator. Select once at process start.
var active SchemaValidator = FullValidator{}

// Use selects the process-wide validator. Call once during initialization,
// before any Register or Validate call.
func Use(v SchemaValidator) { active = v }

// UseFallback selects the presence-only fallback validator.
func UseFallback() { active = FallbackValidator{} }

// Active returns the process-wide validator.
func Active() SchemaValidator { return active }

// Compile compiles raw with the active validator.
func Compile(raw any) (*Schema, error) { return active.Compile(raw) }

// MustCompile is like Compile but panics on a malformed schema.
func MustCompile(raw any) *Schema {
	s, err := active.Compile(raw)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks cfg against s with the active validator.
func Validate(cfg Config, s *Schema) (Config, error) { return active.Validate(cfg, s) }

// MustValidate is like Validate but panics with a rendered reason on any
// validation failure.
func MustValidate(cfg Config, s *Schema) Config {
	out, err := active.Validate(cfg, s)
	if err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}
	return out
}

// RenderDocs renders field documentation for s with the active validator.
func RenderDocs(s *Schema) string { return active.RenderDocs(s) }

// TypeSignature derives the record's structural type expression with the
// active validator.
func TypeSignature(s *Schema) string { return active.TypeSignature(s) }

// FieldSignature derives a single field's type expression with the active
// validator.
func FieldSignature(s *Schema, name string) (string, error) {
	return active.FieldSignature(s, name)
}
