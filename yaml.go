package construct

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// yamlField is the YAML form of a Field. Rules are not representable in
// YAML; attach them in Go after parsing if needed.
type yamlField struct {
	Name     string `yaml:"name"`
	Type     string `yaml:"type"`
	Required bool   `yaml:"required"`
	Default  any    `yaml:"default"`
	Doc      string `yaml:"doc"`
	Format   string `yaml:"format"`
}

// ParseSchema parses a declarative YAML field list into a RawSchema:
//
//	- name: host
//	  type: string
//	  required: true
//	  doc: hostname to connect to
//	- name: port
//	  type: int
//	  default: 5432
//
// Decoding is strict: unknown keys are rejected.
func ParseSchema(b []byte) (RawSchema, error) {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)

	var fields []yamlField
	if err := dec.Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("parse schema: empty document")
		}
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	raw := make(RawSchema, 0, len(fields))
	for i, yf := range fields {
		if yf.Name == "" {
			return nil, fmt.Errorf("parse schema: field %d has no name", i)
		}
		raw = append(raw, Field{
			Name:     yf.Name,
			Type:     TypeTag(yf.Type),
			Required: yf.Required,
			Default:  yf.Default,
			Doc:      yf.Doc,
			Format:   yf.Format,
		})
	}
	return raw, nil
}
