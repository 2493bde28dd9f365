// Package config loads a configuration file into an immutable tree and reads
// values from it by dot-path.
//
// The package has three parts:
//   - Load and LoadFrom turn a file (or any DataFetcher and Parser pair) into a Tree
//   - Resolve walks a Tree with a sequence of path segments
//   - Config.Get combines the two and falls back to a default on a miss
//
// # Dot-paths
//
// Keys are addressed with "." between segments:
//
//	"database.mysql.host" -> tree["database"]["mysql"]["host"]
//
// A path resolves only if every segment names a key in a mapping. A missing
// key, a scalar or sequence met before the last segment, an empty path and a
// path with an empty segment ("a..b", ".a", "a.") all count as not found.
// A key explicitly set to null is found and its value is nil.
//
// # Errors
//
// Loading fails with a *LoadError when the file is missing, unreadable, empty,
// not decodable or not a mapping at the top level. Lookups never fail; Get
// returns the caller's default instead.
//
// # Example
//
//	cfg, err := config.NewFromFile("config.yaml")
//	if err != nil {
//	    return err
//	}
//
//	host := cfg.Get("database.mysql.host", "localhost")
package config
