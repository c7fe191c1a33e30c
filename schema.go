package construct

import (
	"fmt"
	"strings"
)

type (
	// Field is a single entry in a raw schema.
	//
	// Name must be unique within a schema. Type defaults to [TypeAny] when
	// empty. Default is used when the field is omitted from the input; it is
	// never type-checked against Type. Doc feeds [RenderDocs] and the OpenAPI
	// generator. Format and Rules are honored by [FullValidator] only.
	Field struct {
		Name     string
		Type     TypeTag
		Required bool
		Default  any
		Doc      string
		Format   string
		Rules    []Rule
	}

	// RawSchema is an ordered list of field definitions as written by the
	// schema author.
	RawSchema []Field

	// Schema is a compiled, immutable schema handle. Compile one with
	// [Compile] (or a validator's Compile) and share it freely; it is
	// read-only for its entire lifetime.
	Schema struct {
		raw      RawSchema
		fields   []Field
		index    map[string]int
		required []string
	}
)

// newSchema compiles raw without structural checking.
// The raw slice is retained as-is so Raw round-trips exactly.
func newSchema(raw RawSchema) *Schema {
	s := &Schema{
		raw:    raw,
		fields: make([]Field, len(raw)),
		index:  make(map[string]int, len(raw)),
	}
	for i, f := range raw {
		if f.Type == "" {
			f.Type = TypeAny
		}
		s.fields[i] = f
		if _, dup := s.index[f.Name]; !dup {
			s.index[f.Name] = i
		}
		if f.Required {
			s.required = append(s.required, f.Name)
		}
	}
	return s
}

// checkRaw reports malformed schemas: empty or duplicate field names.
func checkRaw(raw RawSchema) error {
	seen := make(map[string]bool, len(raw))
	for i, f := range raw {
		if f.Name == "" {
			return fmt.Errorf("schema field %d has an empty name", i)
		}
		if seen[f.Name] {
			return fmt.Errorf("schema field %q is defined more than once", f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// compileSchema is the shared Compile body. It is idempotent: an already
// compiled *Schema is returned unchanged. check is nil for the fallback.
func compileSchema(raw any, check func(RawSchema) error) (*Schema, error) {
	var rs RawSchema
	switch r := raw.(type) {
	case *Schema:
		return r, nil
	case RawSchema:
		rs = r
	case []Field:
		rs = RawSchema(r)
	default:
		return nil, fmt.Errorf("cannot compile a schema from %T", raw)
	}
	if check != nil {
		if err := check(rs); err != nil {
			return nil, err
		}
	}
	return newSchema(rs), nil
}

// Raw returns the field definitions the schema was compiled from.
func (s *Schema) Raw() RawSchema { return s.raw }

// Fields returns the compiled field definitions in schema order.
func (s *Schema) Fields() []Field { return s.fields }

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Field returns the definition of the named field.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Required returns the names of required fields in schema order.
func (s *Schema) Required() []string { return s.required }

// renderDocs produces the field documentation shared by both validators:
// one bullet per field, in schema order, trailing newline included.
func renderDocs(s *Schema) string {
	var b strings.Builder
	for _, f := range s.fields {
		b.WriteString("* ")
		b.WriteString(f.Name)
		b.WriteString(" (type: ")
		b.WriteString(string(f.Type))
		b.WriteString(")")
		if f.Doc != "" {
			b.WriteString(" - ")
			b.WriteString(f.Doc)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// titleFirst uppercases the first byte of s.
// Used to convert schema field names (e.g. "host") to Go field names ("Host").
func titleFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
