package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	tomlparser "github.com/0xalexb/hjarta-config/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
)

// ErrNotMapping is returned when a document decodes to something other than a mapping.
var ErrNotMapping = errors.New("top-level value is not a mapping")

// ErrUnsupportedFormat is returned when no parser is registered for a file extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// LoadError reports a configuration file that could not be turned into a Tree.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return "loading config: " + e.Err.Error()
	}

	return fmt.Sprintf("loading config %q: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Load reads the file at path and decodes it into a Tree.
// The parser is chosen by extension: .yaml, .yml, .json or none use YAML, .toml uses TOML.
// Each call reads the file again and returns an independent Tree.
func Load(path string) (Tree, error) {
	parser, err := ParserFor(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	tree, err := LoadFrom(filefetcher.New(path), parser)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
		}

		return nil, err
	}

	return tree, nil
}

// LoadFrom fetches raw data and decodes it with parser.
// Every failure is returned as a *LoadError without a path.
func LoadFrom(fetcher DataFetcher, parser Parser) (Tree, error) {
	data, err := fetcher.Fetch()
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("reading data error: %w", err)}
	}

	value, err := parser.Parse(data)
	if err != nil {
		return nil, &LoadError{Err: fmt.Errorf("parsing error: %w", err)}
	}

	mapping, isMapping := value.(map[string]any)
	if !isMapping {
		return nil, &LoadError{Err: fmt.Errorf("%w: got %T", ErrNotMapping, value)}
	}

	return Tree(mapping), nil
}

// ParserFor returns the parser registered for the extension of path.
//
//nolint:ireturn // callers only need the Parser behaviour
func ParserFor(path string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case "", ".yaml", ".yml", ".json":
		return yamlparser.NewParser(), nil
	case ".toml":
		return tomlparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
