package construct

// KV is a single key/value entry in a Config.
type KV struct {
	Key   string
	Value any
}

// Config is an ordered list of key/value pairs supplied at build time.
// Keys need not be unique; where a single value is needed, the last
// occurrence of a key wins.
type Config []KV

// Get returns the value for key. When key appears more than once, the last
// occurrence wins.
func (c Config) Get(key string) (any, bool) {
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Key == key {
			return c[i].Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (c Config) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Keys returns all keys in order, duplicates included.
func (c Config) Keys() []string {
	keys := make([]string, len(c))
	for i, kv := range c {
		keys[i] = kv.Key
	}
	return keys
}

// Merge returns a new Config where entries of overrides take precedence over
// entries of c for duplicate keys. Entries of c keep their relative order,
// followed by the override entries.
func (c Config) Merge(overrides Config) Config {
	shadowed := make(map[string]bool, len(overrides))
	for _, kv := range overrides {
		shadowed[kv.Key] = true
	}
	out := make(Config, 0, len(c)+len(overrides))
	for _, kv := range c {
		if !shadowed[kv.Key] {
			out = append(out, kv)
		}
	}
	return append(out, overrides...)
}

// Map collapses the config into a map, last occurrence winning.
func (c Config) Map() map[string]any {
	m := make(map[string]any, len(c))
	for _, kv := range c {
		m[kv.Key] = kv.Value
	}
	return m
}
