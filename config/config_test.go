package config

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mysqlConfig() *Config {
	return New(Tree{
		"database": map[string]any{
			"mysql": map[string]any{
				"host": "127.0.0.1",
				"port": "3306",
			},
		},
		"cache": map[string]any{
			"driver": nil,
		},
		"name": "app",
	})
}

func TestConfig_Get(t *testing.T) {
	t.Parallel()

	cfg := mysqlConfig()

	tests := []struct {
		name     string
		path     string
		def      any
		expected any
	}{
		{
			name:     "existing value ignores default",
			path:     "database.mysql.host",
			def:      "fallback",
			expected: "127.0.0.1",
		},
		{
			name:     "existing value without default",
			path:     "database.mysql.host",
			def:      nil,
			expected: "127.0.0.1",
		},
		{
			name:     "missing leaf returns default",
			path:     "database.mysql.missing",
			def:      "fallback",
			expected: "fallback",
		},
		{
			name:     "missing intermediate without default returns nil",
			path:     "database.nonexistent.host",
			def:      nil,
			expected: nil,
		},
		{
			name:     "scalar mid-path returns default",
			path:     "name.first",
			def:      "D",
			expected: "D",
		},
		{
			name:     "present null is not replaced by default",
			path:     "cache.driver",
			def:      "redis",
			expected: nil,
		},
		{
			name:     "empty path returns default",
			path:     "",
			def:      "D",
			expected: "D",
		},
		{
			name:     "consecutive dots return default",
			path:     "database..host",
			def:      "D",
			expected: "D",
		},
		{
			name:     "default is returned unchanged",
			path:     "missing",
			def:      42,
			expected: 42,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, cfg.Get(tt.path, tt.def))
		})
	}
}

func TestConfig_Get_DefaultIdentity(t *testing.T) {
	t.Parallel()

	def := map[string]any{"k": "v"}

	result := mysqlConfig().Get("missing.section", def)

	resultMap, ok := result.(map[string]any)
	require.True(t, ok)

	resultMap["added"] = true
	assert.Equal(t, true, def["added"], "default must be returned as-is, not copied")
}

func TestConfig_Lookup(t *testing.T) {
	t.Parallel()

	cfg := mysqlConfig()

	value, found := cfg.Lookup("database.mysql.port")
	assert.True(t, found)
	assert.Equal(t, "3306", value)

	value, found = cfg.Lookup("cache.driver")
	assert.True(t, found)
	assert.Nil(t, value)

	value, found = cfg.Lookup("cache.ttl")
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestConfig_Has(t *testing.T) {
	t.Parallel()

	cfg := mysqlConfig()

	assert.True(t, cfg.Has("database"))
	assert.True(t, cfg.Has("database.mysql.host"))
	assert.True(t, cfg.Has("cache.driver"))
	assert.False(t, cfg.Has("database.mysql.host.ip"))
	assert.False(t, cfg.Has(""))
}

func TestConfig_Sub(t *testing.T) {
	t.Parallel()

	cfg := mysqlConfig()

	mysql, ok := cfg.Sub("database.mysql")
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1", mysql.Get("host", nil))
	assert.Equal(t, "fallback", mysql.Get("user", "fallback"))

	_, ok = cfg.Sub("database.mysql.host")
	assert.False(t, ok, "scalar is not a section")

	_, ok = cfg.Sub("database.postgres")
	assert.False(t, ok)

	_, ok = cfg.Sub("cache.driver")
	assert.False(t, ok, "null is not a section")
}

func TestConfig_NilReceiver(t *testing.T) {
	t.Parallel()

	var cfg *Config

	assert.Equal(t, "D", cfg.Get("a.b", "D"))
	assert.False(t, cfg.Has("a"))

	_, ok := cfg.Sub("a")
	assert.False(t, ok)
}

func TestConfig_EmptyTree(t *testing.T) {
	t.Parallel()

	cfg := New(nil)

	assert.Equal(t, "D", cfg.Get("a", "D"))
}

func TestConfig_ConcurrentReads(t *testing.T) {
	t.Parallel()

	cfg := mysqlConfig()

	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				assert.Equal(t, "127.0.0.1", cfg.Get("database.mysql.host", nil))
				assert.Equal(t, "D", cfg.Get("database.mysql.missing", "D"))
			}
		}()
	}

	wg.Wait()
}

func TestNewFromFile(t *testing.T) {
	t.Parallel()

	configPath := writeConfigFile(t, "config.yaml", []byte(`
database:
  mysql:
    host: 127.0.0.1
    port: "3306"
`))

	cfg, err := NewFromFile(configPath)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Get("database.mysql.host", nil))
	assert.Equal(t, "fallback", cfg.Get("database.mysql.missing", "fallback"))
	assert.Nil(t, cfg.Get("database.nonexistent.host", nil))
}

func TestNewFromFile_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := NewFromFile("/nonexistent/config.yaml")

	assert.Nil(t, cfg)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "/nonexistent/config.yaml", loadErr.Path)
}
