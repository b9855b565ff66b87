package app

import (
	"context"
	"fmt"

	"github.com/vk/fscheck/internal/ctxlog"
	"github.com/vk/fscheck/internal/driver"
)

// Run executes the configured command and returns the process exit status.
func (a *App) Run(ctx context.Context) int {
	ctx = a.withLogger(ctx)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "command", a.config.Command, "source", a.source.Name())

	var code int
	switch a.config.Command {
	case CommandTokens:
		code = a.runTokens(ctx)
	default:
		code = a.runValidate(ctx)
	}

	logger.Debug("App.Run method finished.", "exit_code", code)
	return code
}

func (a *App) runValidate(ctx context.Context) int {
	d := driver.New(a.engine, a.source, a.streams.Out, a.Messages())
	return d.Run(ctx)
}

// runTokens prints one token per line: position, kind and text.
func (a *App) runTokens(ctx context.Context) int {
	logger := ctxlog.FromContext(ctx)

	in, err := a.source.Open()
	if err != nil {
		logger.Error("Failed to open input.", "source", a.source.Name(), "error", err)
		return driver.ExitInvalid
	}
	defer in.Close()

	toks, diags, err := a.engine.Tokens(a.source.Name(), in)
	if err != nil {
		logger.Error("Failed to read input.", "source", a.source.Name(), "error", err)
		return driver.ExitInvalid
	}
	for _, tok := range toks {
		fmt.Fprintf(a.streams.Out, "%d:%d\t%s\t%q\n", tok.Range.Start.Line, tok.Range.Start.Column, tok.Kind, tok.Text)
	}
	if diags.HasErrors() {
		a.engine.Report(diags)
		return driver.ExitInvalid
	}
	return driver.ExitValid
}
