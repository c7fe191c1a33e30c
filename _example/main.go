// Command example demonstrates schema registration, validated construction,
// and the generated documentation surfaces.
//
// Run:
//
//	go run ./_example
package main

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/Gobd/construct"
)

// Server is built from a declarative field schema instead of hand-written
// option parsing.
type Server struct {
	Host    string
	Port    int
	Contact string
	Level   string
}

var serverSchema = construct.RawSchema{
	{Name: "host", Type: construct.TypeString, Required: true, Doc: "hostname to bind"},
	{Name: "port", Type: construct.TypeInt, Default: 8080, Doc: "listen port"},
	{Name: "contact", Type: construct.TypeString, Format: "email", Doc: "on-call contact"},
	{Name: "level", Type: construct.TypeString, Default: "info",
		Rules: []construct.Rule{construct.In("debug", "info", "error")},
		Doc:   "log verbosity"},
}

func main() {
	construct.MustRegister[Server](serverSchema)

	srv, err := construct.Build[Server](nil, construct.Config{
		{Key: "host", Value: "api.internal"},
		{Key: "contact", Value: "ops@example.com"},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("built: %+v\n\n", *srv)

	// Overrides on an existing instance.
	tuned := construct.MustBuild(srv, construct.Config{{Key: "port", Value: 9090}})
	fmt.Printf("tuned: %+v\n\n", *tuned)

	// Generated documentation.
	schema, _ := construct.SchemaFor[Server]()
	fmt.Println("docs:")
	fmt.Print(construct.RenderDocs(schema))
	fmt.Println("\ntype:", construct.TypeSignature(schema))

	// OpenAPI 3 rendering of the same schema.
	ref, err := construct.NewSchemaRef(schema)
	if err != nil {
		log.Fatal(err)
	}
	b, _ := json.MarshalIndent(ref.Value, "", "  ")
	fmt.Printf("\nopenapi:\n%s\n", b)

	// A rejected build keeps the structured reason.
	if _, err := construct.Build[Server](nil, construct.Config{
		{Key: "host", Value: "api.internal"},
		{Key: "level", Value: "loud"},
	}); err != nil {
		fmt.Println("\nrejected:", err)
	}
}
