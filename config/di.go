package config

import (
	"errors"
	"log/slog"

	"go.uber.org/fx"
)

// ErrEmptyPath is returned when a config module is created without a file path.
var ErrEmptyPath = errors.New("config file path must not be empty")

// Provider returns a constructor that loads the file at path into a Config.
// The file is read when the constructor runs, which lets the DI container control when loading happens.
func Provider(path string) func() (*Config, error) {
	return func() (*Config, error) {
		if path == "" {
			return nil, &LoadError{Err: ErrEmptyPath}
		}

		cfg, err := NewFromFile(path)
		if err != nil {
			return nil, err
		}

		slog.Debug("configuration loaded", slog.String("path", path), slog.Int("keys", len(cfg.tree)))

		return cfg, nil
	}
}

// NewModule creates an Fx module that provides *Config and Getter loaded from path.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(path string) fx.Option {
	if path == "" {
		return fx.Error(ErrEmptyPath)
	}

	return fx.Module("config",
		fx.Provide(
			fx.Annotate(
				Provider(path),
				fx.As(fx.Self()),
				fx.As(new(Getter)),
			),
		),
	)
}
