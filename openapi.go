package construct

import (
	"github.com/getkin/kin-openapi/openapi3"
)

// NewSchemaRef renders a compiled schema as an OpenAPI 3 object schema.
// Field docs become property descriptions, defaults and formats carry over,
// required fields populate the object's required list, and extra rules
// document themselves via [Rule.Describe].
func NewSchemaRef(s *Schema) (*openapi3.SchemaRef, error) {
	obj := openapi3.NewObjectSchema()
	for _, f := range s.Fields() {
		prop := propertySchema(f.Type)
		if f.Doc != "" {
			prop.Description = f.Doc
		}
		if f.Default != nil {
			prop.Default = f.Default
		}
		if f.Format != "" {
			prop.Format = f.Format
		}
		ref := openapi3.NewSchemaRef("", prop)
		for _, rule := range f.Rules {
			if err := rule.Describe(f.Name, obj, ref); err != nil {
				return nil, err
			}
		}
		obj.Properties[f.Name] = ref
		if f.Required {
			obj.Required = append(obj.Required, f.Name)
		}
	}
	return openapi3.NewSchemaRef("", obj), nil
}

// propertySchema maps a type tag to its OpenAPI property schema.
func propertySchema(tag TypeTag) *openapi3.Schema {
	switch tag {
	case TypeString:
		return openapi3.NewStringSchema()
	case TypeBytes:
		return openapi3.NewBytesSchema()
	case TypeBool:
		return openapi3.NewBoolSchema()
	case TypeInt, TypeUint, TypePosInt:
		sc := openapi3.NewIntegerSchema()
		switch tag {
		case TypeUint:
			zero := float64(0)
			sc.Min = &zero
		case TypePosInt:
			one := float64(1)
			sc.Min = &one
		}
		return sc
	case TypeInt64:
		return openapi3.NewInt64Schema()
	case TypeFloat:
		return openapi3.NewFloat64Schema()
	case TypeDuration:
		sc := openapi3.NewStringSchema()
		sc.Format = "duration"
		return sc
	case TypeTime:
		return openapi3.NewDateTimeSchema()
	case TypeSlice:
		return openapi3.NewArraySchema()
	case TypeMap, TypeKV:
		return openapi3.NewObjectSchema()
	}
	if _, elem, ok := splitMapTag(tag); ok {
		sc := openapi3.NewObjectSchema()
		sc.AdditionalProperties = openapi3.AdditionalProperties{
			Schema: openapi3.NewSchemaRef("", propertySchema(elem)),
		}
		return sc
	}
	// TypeAny and unrecognized tags: unconstrained.
	return openapi3.NewSchema()
}
