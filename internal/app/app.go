package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vk/fscheck/internal/ctxlog"
	"github.com/vk/fscheck/internal/diag"
	"github.com/vk/fscheck/internal/driver"
	"github.com/vk/fscheck/internal/filescript"
	"github.com/vk/fscheck/internal/fsutil"
	"github.com/vk/fscheck/internal/i18n"
)

// Streams are the process's standard streams. Out carries only the verdict
// line (or the token dump); logs and diagnostics go to Err.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	streams Streams
	config  *Config
	logger  *slog.Logger
	lang    language.Tag
	printer *message.Printer
	engine  *filescript.Engine
	source  *fsutil.Source
}

// NewApp is the constructor for the main application. It builds the logger,
// resolves the output language and assembles the engine and its reporter.
func NewApp(streams Streams, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, streams.Err)
	logger.Debug("Logger configured successfully.")

	lang, err := i18n.Resolve(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve language: %w", err)
	}
	printer := i18n.NewPrinter(lang)
	logger.Debug("Language resolved.", "requested", cfg.Language, "language", lang.String())

	reporter := newReporter(cfg, streams.Err)
	engine := filescript.NewEngine(
		filescript.WithPrinter(printer),
		filescript.WithReporter(reporter),
		filescript.WithSemanticChecks(cfg.SemanticChecks),
	)

	return &App{
		streams: streams,
		config:  cfg,
		logger:  logger,
		lang:    lang,
		printer: printer,
		engine:  engine,
		source:  fsutil.NewSource(cfg.InputPath, streams.In),
	}, nil
}

// Language returns the resolved output language.
func (a *App) Language() language.Tag {
	return a.lang
}

// Messages returns the verdict lines in the resolved language.
func (a *App) Messages() driver.Messages {
	return driver.Messages{
		Valid:   a.printer.Sprintf(i18n.MsgValid),
		Invalid: a.printer.Sprintf(i18n.MsgInvalid),
	}
}

func newReporter(cfg *Config, w io.Writer) diag.Reporter {
	switch cfg.DiagnosticsFormat {
	case "json":
		return diag.NewJSONReporter(w)
	case "yaml":
		return diag.NewYAMLReporter(w)
	case "none":
		return diag.Discard
	default:
		color := cfg.Color && diag.IsTerminal(w)
		return diag.NewTextReporter(w, uint(cfg.Width), color)
	}
}

// withLogger returns ctx carrying the app's logger.
func (a *App) withLogger(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
