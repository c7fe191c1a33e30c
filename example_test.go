package construct_test

import (
	"fmt"

	"github.com/Gobd/construct"
)

type Cache struct {
	Addr    string
	Entries int
}

func init() {
	construct.MustRegister[Cache](construct.RawSchema{
		{Name: "addr", Type: construct.TypeString, Required: true, Doc: "address of the backing store"},
		{Name: "entries", Type: construct.TypeInt, Default: 1024, Doc: "maximum number of cached entries"},
	})
}

func ExampleBuild() {
	cache, err := construct.Build[Cache](nil, construct.Config{
		{Key: "addr", Value: "redis.internal:6379"},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cache.Addr, cache.Entries)
	// Output: redis.internal:6379 1024
}

func ExampleBuild_override() {
	base := &Cache{Addr: "redis.internal:6379", Entries: 1024}
	cache, err := construct.Build(base, construct.Config{
		{Key: "entries", Value: 64},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(cache.Addr, cache.Entries)
	// Output: redis.internal:6379 64
}

func ExampleBuild_error() {
	_, err := construct.Build[Cache](nil, construct.Config{
		{Key: "entries", Value: 64},
	})
	fmt.Println(err)
	// Output: addr: cannot be blank.
}

func ExampleRenderDocs() {
	s, _ := construct.SchemaFor[Cache]()
	fmt.Print(construct.RenderDocs(s))
	// Output:
	// * addr (type: string) - address of the backing store
	// * entries (type: int) - maximum number of cached entries
}

func ExampleTypeSignature() {
	s, _ := construct.SchemaFor[Cache]()
	fmt.Println(construct.TypeSignature(s))
	// Output: struct { Addr string; Entries int }
}
