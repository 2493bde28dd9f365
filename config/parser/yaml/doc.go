// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml to decode a document into the
// untyped value model the config package resolves against. Keys are kept
// exactly as written in the document.
//
// Usage:
//
//	parser := yaml.NewParser()
//	value, err := parser.Parse(data)
//
// Decoded shapes:
//   - mapping  -> map[string]any
//   - sequence -> []any
//   - null, ~  -> nil
//   - scalars  -> string, bool, integer or float values
package yaml
