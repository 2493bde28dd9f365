package config

// Parser defines an interface for decoding raw configuration data.
//
// Implementations return the generic value model: mappings as map[string]any,
// sequences as []any and scalars as their natural Go type. Checking that the
// document is a mapping is left to the loader.
// See config/parser/yaml and config/parser/toml.
type Parser interface {
	Parse(data []byte) (any, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Getter is the read side of a configuration, the only thing consumers need.
type Getter interface {
	Get(path string, def any) any
}

// Tree is a decoded configuration document.
// Values are scalars, []any or nested map[string]any.
// A Tree is never modified after loading.
type Tree map[string]any

// Config gives dot-path access to a Tree.
// It is safe for concurrent use because the tree is never written to.
type Config struct {
	tree Tree
}

var _ Getter = (*Config)(nil)

// New returns a Config reading from tree.
func New(tree Tree) *Config {
	return &Config{tree: tree}
}

// NewFromFile loads the file at path and returns a Config over its contents.
func NewFromFile(path string) (*Config, error) {
	tree, err := Load(path)
	if err != nil {
		return nil, err
	}

	return New(tree), nil
}

// Get returns the value stored at the dot-path, or def when nothing is stored there.
// A key holding an explicit null returns nil, not def.
func (c *Config) Get(path string, def any) any {
	value, found := c.Lookup(path)
	if !found {
		return def
	}

	return value
}

// Lookup returns the value stored at the dot-path and whether the path resolved.
func (c *Config) Lookup(path string) (any, bool) {
	if c == nil {
		return nil, false
	}

	return Resolve(c.tree, SplitPath(path))
}

// Has reports whether the dot-path resolves, even to a null value.
func (c *Config) Has(path string) bool {
	_, found := c.Lookup(path)

	return found
}

// Sub returns a Config rooted at the mapping stored at the dot-path.
// It returns false when the path does not resolve or does not hold a mapping.
func (c *Config) Sub(path string) (*Config, bool) {
	value, found := c.Lookup(path)
	if !found {
		return nil, false
	}

	mapping, isMapping := asMapping(value)
	if !isMapping {
		return nil, false
	}

	return New(Tree(mapping)), true
}
