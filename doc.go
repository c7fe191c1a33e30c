// Package construct builds struct values from declarative field schemas.
//
// A schema is an ordered list of field definitions. Register it once for a
// struct type, then build validated instances from key/value configuration:
//
//	construct.MustRegister[Conn](construct.RawSchema{
//	    {Name: "host", Type: construct.TypeString, Required: true},
//	    {Name: "port", Type: construct.TypeInt, Default: 5432},
//	})
//
//	conn, err := construct.Build[Conn](nil, construct.Config{
//	    {Key: "host", Value: "db.internal"},
//	})
//
// Validation is performed by one of two interchangeable [SchemaValidator]
// implementations, selected once at process start with [Use]:
//
//   - [FullValidator] (the default) delegates to the ozzo-validation engine
//     and checks required keys, value types, string formats, and any extra
//     per-field rules.
//   - [FallbackValidator] checks only that required keys are present. It is
//     the degraded mode for builds that cannot carry the validation engine,
//     and deliberately never rejects wrong-typed values or extra keys.
//
// Compiled schemas also render human-readable field docs ([RenderDocs]),
// structural type signatures ([TypeSignature]), and OpenAPI 3 schemas
// ([NewSchemaRef]).
package construct
