package di

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-config/config"
	"github.com/0xalexb/hjarta-config/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Dot-paths read from the configuration file to set up logging.
const (
	LogLevelPath  = "logging.level"
	LogFormatPath = "logging.format"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for application using Fx.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	var (
		cfg     *config.Config
		loadErr error
	)

	if options.ConfigFile != "" {
		cfg, loadErr = config.NewFromFile(options.ConfigFile)
	}

	loggerConfig := newLoggerConfig(options.LogLevel, cfg)
	logger := createLogger(loggerConfig, os.Stderr)
	slog.SetDefault(logger)

	fxOptions := []fx.Option{
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
	}

	switch {
	case loadErr != nil:
		logger.Error("failed to load configuration", slog.String("path", options.ConfigFile), slog.Any("error", loadErr))
		fxOptions = append(fxOptions, fx.Error(loadErr))
	case cfg != nil:
		logger.Debug("configuration loaded", slog.String("path", options.ConfigFile))
		fxOptions = append(fxOptions, supplyConfig(cfg))
	}

	fxOptions = append(fxOptions, fx.Options(options.Modules...))

	return fx.New(fxOptions...)
}

// newLoggerConfig prefers an explicit level and falls back to the configuration file.
func newLoggerConfig(level string, cfg *config.Config) logging.LoggerConfig {
	loggerConfig := logging.LoggerConfig{Level: level, Format: ""}

	if loggerConfig.Level == "" {
		if fileLevel, isString := cfg.Get(LogLevelPath, "").(string); isString {
			loggerConfig.Level = fileLevel
		}
	}

	if format, isString := cfg.Get(LogFormatPath, "").(string); isString {
		loggerConfig.Format = format
	}

	return loggerConfig
}

func createLogger(config logging.LoggerConfig, w io.Writer) *slog.Logger {
	return logging.NewLogger(config, w)
}

//nolint:ireturn // fx.Option is the standard return type for Fx options
func supplyConfig(cfg *config.Config) fx.Option {
	return fx.Provide(
		fx.Annotate(
			func() *config.Config { return cfg },
			fx.As(fx.Self()),
			fx.As(new(config.Getter)),
		),
	)
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
