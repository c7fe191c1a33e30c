package construct

import (
	"fmt"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
)

// formats are the named string formats recognized by [Format]. Checkers come
// from govalidator.
var formats = map[string]func(string) bool{
	"email":  govalidator.IsEmail,
	"url":    govalidator.IsURL,
	"uuid":   govalidator.IsUUID,
	"ip":     govalidator.IsIP,
	"host":   govalidator.IsHost,
	"port":   govalidator.IsPort,
	"semver": govalidator.IsSemver,
}

// Format returns a rule that checks a string value against a named format
// ("email", "url", "uuid", "ip", "host", "port", "semver"). The full
// validator applies it automatically for fields with a Format option.
func Format(name string) Rule {
	return &formatRule{name: name}
}

type formatRule struct {
	name string
}

func (r *formatRule) Validate(value any) error {
	check, ok := formats[r.name]
	if !ok {
		return fmt.Errorf("unknown format %q", r.name)
	}
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("must be a string to match format %s, got %T", r.name, value)
	}
	if !check(s) {
		return fmt.Errorf("must be a valid %s", r.name)
	}
	return nil
}

func (r *formatRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	ref.Value.Format = r.name
	return nil
}
