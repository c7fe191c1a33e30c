package construct

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/mitchellh/mapstructure"
)

// entry is the registered metadata for one struct type.
type entry struct {
	schema    *Schema
	construct func(Config) (any, error)
	sigs      map[string]string
}

var (
	regMu    sync.RWMutex
	registry = map[reflect.Type]*entry{}
)

type (
	// Option configures a Register call.
	Option func(*options)

	options struct {
		validator   SchemaValidator
		constructor func(Config) (any, error)
		sigFields   []string
		sigSubset   bool
	}
)

// WithValidator overrides the validator used to compile the schema and to
// validate inputs for this type. The default is the active process-wide
// validator at registration time.
func WithValidator(v SchemaValidator) Option {
	return func(o *options) { o.validator = v }
}

// WithSignatureFields restricts the generated field-level type annotations
// to the named subset of fields. By default annotations are generated for
// all fields.
func WithSignatureFields(names ...string) Option {
	return func(o *options) {
		o.sigSubset = true
		o.sigFields = names
	}
}

// Constructor replaces the generated construction function with fn. The
// replacement owns validation entirely: it receives the raw input config
// and must satisfy the same contract as the generated one.
func Constructor[T any](fn func(Config) (*T, error)) Option {
	return func(o *options) {
		o.constructor = func(cfg Config) (any, error) { return fn(cfg) }
	}
}

// Register compiles the schema for struct type T and installs its
// construction function into the process-wide registry. Registering the same
// type again replaces the previous registration (last writer wins).
//
// Call once per type at process start, after selecting the validator.
func Register[T any](raw RawSchema, opts ...Option) error {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return fmt.Errorf("cannot register schema for %s: not a struct type", t)
	}

	o := options{validator: Active()}
	for _, opt := range opts {
		opt(&o)
	}

	s, err := o.validator.Compile(raw)
	if err != nil {
		return fmt.Errorf("compile schema for %s: %w", t, err)
	}

	sigs, err := fieldSignatures(s, o)
	if err != nil {
		return fmt.Errorf("type annotations for %s: %w", t, err)
	}

	construct := o.constructor
	if construct == nil {
		construct = defaultConstructor[T](s, o.validator)
	}

	regMu.Lock()
	registry[t] = &entry{schema: s, construct: construct, sigs: sigs}
	regMu.Unlock()
	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister[T any](raw RawSchema, opts ...Option) {
	if err := Register[T](raw, opts...); err != nil {
		panic(err)
	}
}

// fieldSignatures derives per-field type annotations: all fields, or only
// the subset named by WithSignatureFields.
func fieldSignatures(s *Schema, o options) (map[string]string, error) {
	names := o.sigFields
	if !o.sigSubset {
		names = make([]string, 0, s.Len())
		for _, f := range s.Fields() {
			names = append(names, f.Name)
		}
	}
	sigs := make(map[string]string, len(names))
	for _, name := range names {
		sig, err := o.validator.FieldSignature(s, name)
		if err != nil {
			return nil, err
		}
		sigs[name] = sig
	}
	return sigs, nil
}

// defaultConstructor wires validation to instance construction: validate the
// input against the schema, fill omitted optional fields with their
// defaults, and decode the result into a fresh *T.
func defaultConstructor[T any](s *Schema, v SchemaValidator) func(Config) (any, error) {
	return func(cfg Config) (any, error) {
		validated, err := v.Validate(cfg, s)
		if err != nil {
			return nil, err
		}
		vals := validated.Map()
		for _, f := range s.Fields() {
			if _, ok := vals[f.Name]; !ok && f.Default != nil {
				vals[f.Name] = f.Default
			}
		}
		out := new(T)
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:  out,
			TagName: "construct",
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(vals); err != nil {
			return nil, err
		}
		return out, nil
	}
}

func lookup(t reflect.Type) (*entry, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	ent, ok := registry[t]
	return ent, ok
}

// SchemaFor returns the compiled schema registered for T.
func SchemaFor[T any]() (*Schema, bool) {
	ent, ok := lookup(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return nil, false
	}
	return ent.schema, true
}

// TypeAnnotations returns the field-level type annotations generated when T
// was registered, keyed by field name.
func TypeAnnotations[T any]() (map[string]string, bool) {
	ent, ok := lookup(reflect.TypeOf((*T)(nil)).Elem())
	if !ok {
		return nil, false
	}
	return ent.sigs, true
}
