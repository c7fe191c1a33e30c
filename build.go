package construct

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// Build constructs a validated *T. Input shapes, tried in order:
//
//  1. base non-nil, empty input: base is returned unchanged, whether or not
//     T was ever registered.
//  2. base non-nil with overrides: base's current field values are
//     flattened into a Config, override entries win for duplicate keys, and
//     construction proceeds as in shape 3.
//  3. base nil with input: T's registered construction function validates
//     the input and builds the record, omitted optional fields taking their
//     schema defaults. If T has no registered schema, a *NoSchemaError is
//     returned.
//
// Build never panics for validation-shaped failures; it always returns a
// tagged error.
func Build[T any](base *T, input Config) (*T, error) {
	if base != nil && len(input) == 0 {
		return base, nil
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	ent, ok := lookup(t)
	if !ok {
		return nil, &NoSchemaError{Type: t}
	}

	cfg := input
	if base != nil {
		cfg = Flatten(base, ent.schema).Merge(input)
	}

	out, err := ent.construct(cfg)
	if err != nil {
		return nil, err
	}
	rec, ok := out.(*T)
	if !ok {
		return nil, fmt.Errorf("constructor for %s returned %T", t, out)
	}
	return rec, nil
}

// MustBuild is like Build but panics on any error path. A reason that is
// already a *ConstructionError is raised as-is; any other reason is wrapped
// in a *ConstructionError naming the target type, with Unwrap preserving the
// original diagnostic.
func MustBuild[T any](base *T, input Config) *T {
	rec, err := Build(base, input)
	if err == nil {
		return rec
	}
	var ce *ConstructionError
	if errors.As(err, &ce) {
		panic(ce)
	}
	t := reflect.TypeOf((*T)(nil)).Elem()
	panic(&ConstructionError{Type: t.String(), Reason: err})
}

// Flatten converts a record instance into a Config in schema field order.
// Schema fields with no matching struct field are skipped, and a nil record
// flattens to an empty Config. Struct fields match by `construct` tag first,
// then by case-insensitive name.
func Flatten[T any](rec *T, s *Schema) Config {
	if rec == nil {
		return nil
	}
	rv := reflect.Indirect(reflect.ValueOf(rec))
	cfg := make(Config, 0, s.Len())
	for _, f := range s.Fields() {
		fv := structFieldFor(rv, f.Name)
		if fv.IsValid() {
			cfg = append(cfg, KV{Key: f.Name, Value: fv.Interface()})
		}
	}
	return cfg
}

// structFieldFor finds the struct field for a schema field name using the
// same matching rules as the mapstructure decode in the constructor.
func structFieldFor(rv reflect.Value, name string) reflect.Value {
	t := rv.Type()
	byName := reflect.Value{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		if tag := strings.Split(sf.Tag.Get("construct"), ",")[0]; tag != "" {
			if tag == name {
				return rv.Field(i)
			}
			continue
		}
		if strings.EqualFold(sf.Name, name) && !byName.IsValid() {
			byName = rv.Field(i)
		}
	}
	return byName
}
