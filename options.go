package di

import (
	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules    []fx.Option
	LogLevel   string
	ConfigFile string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile loads the configuration file at path when the application is built.
// The loaded *config.Config is available to modules both as itself and as config.Getter.
// Its logging.level and logging.format values configure the logger unless WithLogLevel is set.
// A file that cannot be loaded makes Start fail with a *config.LoadError.
func WithConfigFile(path string) Option {
	return func(opts *Options) {
		opts.ConfigFile = path
	}
}

// WithConfigModule adds a module that loads the file at path lazily, when the container first needs it.
// It provides the same types as WithConfigFile, so use one or the other.
func WithConfigModule(path string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, config.NewModule(path))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}
