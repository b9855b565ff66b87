// Package filescript is the parsing engine for FileScript programs. It
// implements driver.Validator: the input is read, lexed, parsed and checked,
// and every diagnostic goes to the configured reporter.
package filescript

import (
	"context"
	"fmt"
	"io"

	"github.com/hashicorp/hcl/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vk/fscheck/internal/ctxlog"
	"github.com/vk/fscheck/internal/diag"
	"github.com/vk/fscheck/internal/driver"
	"github.com/vk/fscheck/internal/filescript/checker"
	"github.com/vk/fscheck/internal/filescript/lexer"
	"github.com/vk/fscheck/internal/filescript/parser"
	"github.com/vk/fscheck/internal/filescript/token"
	"github.com/vk/fscheck/internal/i18n"
)

// Engine validates FileScript programs.
type Engine struct {
	printer  *message.Printer
	reporter diag.Reporter
	semantic bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithPrinter sets the printer used for diagnostic text.
func WithPrinter(p *message.Printer) Option {
	return func(e *Engine) { e.printer = p }
}

// WithReporter sets where diagnostics go.
func WithReporter(r diag.Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// WithSemanticChecks turns the checker pass on or off.
func WithSemanticChecks(on bool) Option {
	return func(e *Engine) { e.semantic = on }
}

// NewEngine creates an engine. By default it reports in English to
// diag.Discard with semantic checks enabled.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		printer:  i18n.NewPrinter(language.English),
		reporter: diag.Discard,
		semantic: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Validate implements driver.Validator.
func (e *Engine) Validate(ctx context.Context, name string, in io.Reader) driver.Result {
	logger := ctxlog.FromContext(ctx)

	src, err := io.ReadAll(in)
	if err != nil {
		e.report(hcl.Diagnostics{e.fatal(i18n.MsgReadFailed, err)})
		return driver.Invalid
	}
	if err := ctx.Err(); err != nil {
		e.report(hcl.Diagnostics{e.fatal(i18n.MsgCanceled, err)})
		return driver.Invalid
	}
	logger.Debug("Input read.", "source", name, "bytes", len(src))

	if sa, ok := e.reporter.(diag.SourceAware); ok {
		sa.AddSource(name, src)
	}

	prog, diags := parser.Parse(name, src, e.printer)
	if !diags.HasErrors() && e.semantic {
		diags = append(diags, checker.Check(prog, e.printer)...)
	}
	errCount := e.report(diags)
	logger.Debug("Validation finished.", "source", name, "diagnostics", len(diags), "errors", errCount)

	if diags.HasErrors() {
		return driver.Invalid
	}
	return driver.Valid
}

// Tokens reads all of in and returns its tokens, ending with EOF or the
// first illegal token, along with any lexical errors.
func (e *Engine) Tokens(name string, in io.Reader) ([]token.Token, hcl.Diagnostics, error) {
	src, err := io.ReadAll(in)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if sa, ok := e.reporter.(diag.SourceAware); ok {
		sa.AddSource(name, src)
	}
	l := lexer.New(name, src, e.printer)
	toks := l.All()
	return toks, l.Diagnostics(), nil
}

// Report forwards diagnostics to the engine's reporter.
func (e *Engine) Report(diags hcl.Diagnostics) int {
	return e.report(diags)
}

func (e *Engine) report(diags hcl.Diagnostics) int {
	if len(diags) == 0 {
		return 0
	}
	return e.reporter.Report(diags)
}

func (e *Engine) fatal(key string, err error) *hcl.Diagnostic {
	return &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  e.printer.Sprintf(key, err),
	}
}
