package construct_test

import (
	"errors"
	"testing"

	c "github.com/Gobd/construct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============ Test types ============

type pair struct {
	Number int
	String string
}

var pairSchema = c.RawSchema{
	{Name: "number", Type: c.TypeInt},
	{Name: "string", Type: c.TypeString},
}

type dbConn struct {
	Host string
	Port int
}

var dbConnSchema = c.RawSchema{
	{Name: "host", Type: c.TypeString, Required: true},
	{Name: "port", Type: c.TypeInt, Default: 5432},
}

// neverRegistered deliberately has no schema.
type neverRegistered struct {
	X int
}

type tagged struct {
	Endpoint string `construct:"addr"`
	Port     int
}

func TestBuildIdentity(t *testing.T) {
	// An already-constructed instance with no overrides comes back
	// unchanged, registered or not.
	inst := &neverRegistered{X: 9}
	got, err := c.Build(inst, nil)
	require.NoError(t, err)
	assert.Same(t, inst, got)

	got, err = c.Build(inst, c.Config{})
	require.NoError(t, err)
	assert.Same(t, inst, got)
}

func TestBuildFromConfig(t *testing.T) {
	c.MustRegister[dbConn](dbConnSchema)

	conn, err := c.Build[dbConn](nil, c.Config{{Key: "host", Value: "db.internal"}})
	require.NoError(t, err)
	assert.Equal(t, &dbConn{Host: "db.internal", Port: 5432}, conn, "omitted optional field takes its default")

	conn, err = c.Build[dbConn](nil, c.Config{
		{Key: "host", Value: "db.internal"},
		{Key: "port", Value: 6543},
	})
	require.NoError(t, err)
	assert.Equal(t, 6543, conn.Port)
}

func TestBuildMergeOverride(t *testing.T) {
	c.MustRegister[pair](pairSchema)

	inst := &pair{Number: 1, String: "a"}
	got, err := c.Build(inst, c.Config{{Key: "number", Value: 2}})
	require.NoError(t, err)
	assert.Equal(t, &pair{Number: 2, String: "a"}, got)
	assert.Equal(t, &pair{Number: 1, String: "a"}, inst, "the base instance is not mutated")
}

func TestBuildValidationError(t *testing.T) {
	c.MustRegister[dbConn](dbConnSchema)

	_, err := c.Build[dbConn](nil, c.Config{})
	var verrs c.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "host")
}

func TestBuildNoSchema(t *testing.T) {
	_, err := c.Build[neverRegistered](nil, c.Config{})
	var ns *c.NoSchemaError
	require.ErrorAs(t, err, &ns)
	assert.ErrorContains(t, err, "no schema registered for type")
	assert.ErrorContains(t, err, "neverRegistered")
}

func TestBuildDuplicateKeysLastWins(t *testing.T) {
	c.MustRegister[pair](pairSchema)

	got, err := c.Build[pair](nil, c.Config{
		{Key: "number", Value: 1},
		{Key: "number", Value: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, got.Number)
}

func TestBuildTaggedFields(t *testing.T) {
	c.MustRegister[tagged](c.RawSchema{
		{Name: "addr", Type: c.TypeString, Required: true},
		{Name: "port", Type: c.TypeInt, Default: 80},
	})

	got, err := c.Build[tagged](nil, c.Config{{Key: "addr", Value: "10.0.0.1"}})
	require.NoError(t, err)
	assert.Equal(t, &tagged{Endpoint: "10.0.0.1", Port: 80}, got)

	// Overrides flatten through the tag as well.
	got, err = c.Build(got, c.Config{{Key: "port", Value: 8080}})
	require.NoError(t, err)
	assert.Equal(t, &tagged{Endpoint: "10.0.0.1", Port: 8080}, got)
}

func TestBuildCustomConstructor(t *testing.T) {
	type custom struct {
		Host string
		Seen bool
	}

	c.MustRegister[custom](c.RawSchema{
		{Name: "host", Type: c.TypeString, Required: true},
	}, c.Constructor(func(cfg c.Config) (*custom, error) {
		host, ok := cfg.Get("host")
		if !ok {
			return nil, &c.ConstructionError{Type: "construct_test.custom", Reason: errors.New("host is mandatory")}
		}
		return &custom{Host: host.(string), Seen: true}, nil
	}))

	got, err := c.Build[custom](nil, c.Config{{Key: "host", Value: "h"}})
	require.NoError(t, err)
	assert.True(t, got.Seen, "bespoke constructor replaces the generated one")

	// A structured construction error from the constructor is raised as-is.
	defer func() {
		r := recover()
		require.NotNil(t, r)
		ce, ok := r.(*c.ConstructionError)
		require.True(t, ok)
		assert.EqualError(t, ce, "unable to construct construct_test.custom: host is mandatory")
	}()
	c.MustBuild[custom](nil, c.Config{})
}

func TestMustBuildWrapsReason(t *testing.T) {
	c.MustRegister[dbConn](dbConnSchema)

	got := c.MustBuild[dbConn](nil, c.Config{{Key: "host", Value: "h"}})
	assert.Equal(t, "h", got.Host)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		ce, ok := r.(*c.ConstructionError)
		require.True(t, ok, "panic value is a ConstructionError, got %T", r)
		// The message names the target type and the rendered reason.
		assert.EqualError(t, ce, "unable to construct construct_test.dbConn: host: cannot be blank.")

		// The original diagnostic is preserved through Unwrap.
		var verrs c.ValidationErrors
		assert.ErrorAs(t, ce, &verrs)
	}()
	c.MustBuild[dbConn](nil, c.Config{})
}

func TestRegisterRejectsNonStruct(t *testing.T) {
	err := c.Register[int](c.RawSchema{{Name: "n", Type: c.TypeInt}})
	assert.ErrorContains(t, err, "not a struct type")
}

func TestRegisterRejectsMalformedSchema(t *testing.T) {
	err := c.Register[pair](c.RawSchema{{Name: "dup"}, {Name: "dup"}})
	assert.ErrorContains(t, err, "compile schema")

	assert.Panics(t, func() {
		c.MustRegister[pair](c.RawSchema{{Name: ""}})
	})
}

func TestRegisterLastWriterWins(t *testing.T) {
	type rewired struct {
		Port int
	}

	c.MustRegister[rewired](c.RawSchema{{Name: "port", Type: c.TypeInt, Default: 1}})
	c.MustRegister[rewired](c.RawSchema{{Name: "port", Type: c.TypeInt, Default: 2}})

	got, err := c.Build[rewired](nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, got.Port)
}

func TestTypeAnnotations(t *testing.T) {
	type annotated struct {
		Host string
		Port int
		Tags []string
	}

	schema := c.RawSchema{
		{Name: "host", Type: c.TypeString},
		{Name: "port", Type: c.TypeInt},
		{Name: "tags", Type: c.TypeSlice},
	}

	c.MustRegister[annotated](schema)
	sigs, ok := c.TypeAnnotations[annotated]()
	require.True(t, ok)
	assert.Equal(t, map[string]string{
		"host": "string",
		"port": "int",
		"tags": "[]any",
	}, sigs)

	// Restricted to an enumerated subset of fields.
	c.MustRegister[annotated](schema, c.WithSignatureFields("port"))
	sigs, ok = c.TypeAnnotations[annotated]()
	require.True(t, ok)
	assert.Equal(t, map[string]string{"port": "int"}, sigs)

	// Unknown names in the subset fail registration.
	err := c.Register[annotated](schema, c.WithSignatureFields("bogus"))
	assert.ErrorContains(t, err, "type annotations")

	_, ok = c.TypeAnnotations[neverRegistered]()
	assert.False(t, ok)
}

func TestSchemaFor(t *testing.T) {
	c.MustRegister[dbConn](dbConnSchema)

	s, ok := c.SchemaFor[dbConn]()
	require.True(t, ok)
	assert.Equal(t, []string{"host"}, s.Required())

	_, ok = c.SchemaFor[neverRegistered]()
	assert.False(t, ok)
}

func TestBuildWithFallbackValidator(t *testing.T) {
	type lax struct {
		Name  string
		Count int
	}

	c.MustRegister[lax](c.RawSchema{
		{Name: "name", Type: c.TypeString, Required: true},
		{Name: "count", Type: c.TypeInt, Default: 1},
	}, c.WithValidator(c.FallbackValidator{}))

	// Same call surface, weaker checking: defaults still apply.
	got, err := c.Build[lax](nil, c.Config{{Key: "name", Value: "n"}})
	require.NoError(t, err)
	assert.Equal(t, &lax{Name: "n", Count: 1}, got)

	_, err = c.Build[lax](nil, c.Config{{Key: "count", Value: 3}})
	var ik *c.InvalidKeysError
	require.ErrorAs(t, err, &ik)
	assert.Equal(t, []string{"name"}, ik.Expected)
	assert.Equal(t, []string{"count"}, ik.Found)
}

func TestUseSelectsProcessValidator(t *testing.T) {
	old := c.Active()
	defer c.Use(old)

	c.UseFallback()
	assert.IsType(t, c.FallbackValidator{}, c.Active())

	type loose struct {
		Level string
	}
	c.MustRegister[loose](c.RawSchema{{Name: "level", Type: c.TypeString, Required: true}})

	_, err := c.Build[loose](nil, c.Config{})
	var ik *c.InvalidKeysError
	assert.ErrorAs(t, err, &ik, "registration picked up the fallback")
}

func TestFlatten(t *testing.T) {
	s, err := c.Compile(pairSchema)
	require.NoError(t, err)

	cfg := c.Flatten(&pair{Number: 3, String: "s"}, s)
	assert.Equal(t, c.Config{
		{Key: "number", Value: 3},
		{Key: "string", Value: "s"},
	}, cfg)

	assert.NotPanics(t, func() {
		assert.Empty(t, c.Flatten[pair](nil, s))
	})
}

func TestConfigMerge(t *testing.T) {
	base := c.Config{{Key: "a", Value: 1}, {Key: "b", Value: 2}}
	merged := base.Merge(c.Config{{Key: "b", Value: 20}, {Key: "c", Value: 3}})

	assert.Equal(t, c.Config{
		{Key: "a", Value: 1},
		{Key: "b", Value: 20},
		{Key: "c", Value: 3},
	}, merged)

	v, ok := merged.Get("b")
	require.True(t, ok)
	assert.Equal(t, 20, v)
	assert.False(t, merged.Has("zzz"))
	assert.Len(t, merged.Map(), 3)
}
