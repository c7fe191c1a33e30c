package construct

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

// TypeTag names the expected type of a field value.
type TypeTag string

// Type tags recognized by the fallback validator. This is a closed list:
// any other tag degrades to the universal "any" signature rather than
// erroring. The full validator additionally passes unrecognized tags through
// verbatim as type expressions.
const (
	TypeAny      TypeTag = "any"
	TypeString   TypeTag = "string"
	TypeBytes    TypeTag = "bytes"
	TypeBool     TypeTag = "bool"
	TypeInt      TypeTag = "int"
	TypeInt64    TypeTag = "int64"
	TypeUint     TypeTag = "uint"
	TypePosInt   TypeTag = "posint"
	TypeFloat    TypeTag = "float64"
	TypeDuration TypeTag = "duration"
	TypeTime     TypeTag = "time"
	TypeMap      TypeTag = "map"
	TypeSlice    TypeTag = "slice"
	TypeKV       TypeTag = "kv"
)

// MapOf returns the tag for a map with typed keys and elements,
// e.g. MapOf(TypeString, TypeInt) for map[string]int.
func MapOf(key, elem TypeTag) TypeTag {
	return "map[" + key + "]" + elem
}

var tagSignatures = map[TypeTag]string{
	TypeAny:      "any",
	TypeString:   "string",
	TypeBytes:    "[]byte",
	TypeBool:     "bool",
	TypeInt:      "int",
	TypeInt64:    "int64",
	TypeUint:     "uint",
	TypePosInt:   "int",
	TypeFloat:    "float64",
	TypeDuration: "time.Duration",
	TypeTime:     "time.Time",
	TypeMap:      "map[string]any",
	TypeSlice:    "[]any",
	TypeKV:       "construct.Config",
}

// splitMapTag parses a MapOf tag of the form "map[K]E".
func splitMapTag(tag TypeTag) (key, elem TypeTag, ok bool) {
	s := string(tag)
	if !strings.HasPrefix(s, "map[") {
		return "", "", false
	}
	depth := 0
	for i := 3; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
			if depth == 0 {
				return TypeTag(s[4:i]), TypeTag(s[i+1:]), i+1 < len(s)
			}
		}
	}
	return "", "", false
}

// signature maps a tag to its type expression using the closed fallback
// vocabulary. Unrecognized tags map to "any".
func signature(tag TypeTag) string {
	if sig, ok := tagSignatures[tag]; ok {
		return sig
	}
	if k, e, ok := splitMapTag(tag); ok {
		return "map[" + signature(k) + "]" + signature(e)
	}
	return "any"
}

// fullSignature is the richer mapping used by the full validator: tags
// outside the closed vocabulary are taken verbatim as type expressions.
func fullSignature(tag TypeTag) string {
	if sig, ok := tagSignatures[tag]; ok {
		return sig
	}
	if k, e, ok := splitMapTag(tag); ok {
		return "map[" + fullSignature(k) + "]" + fullSignature(e)
	}
	return string(tag)
}

// recordSignature renders the structural type of the whole record.
func recordSignature(s *Schema, sig func(TypeTag) string) string {
	if s.Len() == 0 {
		return "struct {}"
	}
	parts := make([]string, 0, s.Len())
	for _, f := range s.fields {
		parts = append(parts, titleFirst(f.Name)+" "+sig(f.Type))
	}
	return "struct { " + strings.Join(parts, "; ") + " }"
}

// checkType reports whether value is acceptable for tag. Checks are shallow:
// container tags validate the container kind only, never the elements.
func checkType(tag TypeTag, value any) error {
	ok := true
	switch tag {
	case TypeAny, "":
		return nil
	case TypeString:
		_, ok = value.(string)
	case TypeBytes:
		_, ok = value.([]byte)
	case TypeBool:
		_, ok = value.(bool)
	case TypeInt, TypeInt64:
		ok = isIntKind(value)
	case TypeUint:
		ok = intAtLeast(value, 0)
	case TypePosInt:
		ok = intAtLeast(value, 1)
	case TypeFloat:
		_, ok = value.(float64)
		if !ok {
			_, ok = value.(float32)
		}
	case TypeDuration:
		_, ok = value.(time.Duration)
	case TypeTime:
		_, ok = value.(time.Time)
	case TypeKV:
		_, ok = value.(Config)
		if !ok {
			_, ok = value.([]KV)
		}
	case TypeMap:
		ok = kindOf(value) == reflect.Map
	case TypeSlice:
		k := kindOf(value)
		ok = k == reflect.Slice || k == reflect.Array
	default:
		if _, _, isMap := splitMapTag(tag); isMap {
			ok = kindOf(value) == reflect.Map
		}
		// Unrecognized tags accept anything.
	}
	if !ok {
		return fmt.Errorf("must be a %s, got '%v' (%T)", tag, value, value)
	}
	return nil
}

func kindOf(value any) reflect.Kind {
	if value == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(value).Kind()
}

func isIntKind(value any) bool {
	switch kindOf(value) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		// time.Duration is int64-kinded but has its own tag.
		_, isDur := value.(time.Duration)
		return !isDur
	}
	return false
}

// intAtLeast reports whether value is an integer >= floor. Unsigned kinds
// are compared without conversion so values above MaxInt64 stay valid.
func intAtLeast(value any, floor int64) bool {
	switch kindOf(value) {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return reflect.ValueOf(value).Uint() >= uint64(floor)
	}
	return isIntKind(value) && reflect.ValueOf(value).Int() >= floor
}
