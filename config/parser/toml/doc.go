// Package toml provides a TOML parser implementation for the config package,
// built on github.com/pelletier/go-toml/v2.
//
// TOML has no null value, so every key present in a decoded tree holds a
// non-nil value. Integers decode as int64, floats as float64 and
// datetimes as the go-toml local or time.Time types.
package toml
