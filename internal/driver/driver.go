// Package driver translates the verdict of a parsing engine into the
// process-level contract: one line on the output and an exit status.
//
// The driver knows nothing about grammars. It opens its source, hands it to
// the Validator exactly once, closes the source and prints one of two fixed
// messages. Diagnostics are the validator's business.
package driver

import (
	"context"
	"fmt"
	"io"

	"github.com/vk/fscheck/internal/ctxlog"
)

// Result is the verdict of a validation. Zero means valid; every other
// value means invalid.
type Result int

const (
	Valid   Result = 0
	Invalid Result = 1
)

// OK reports whether r is the valid verdict.
func (r Result) OK() bool {
	return r == Valid
}

// Exit statuses returned by Run.
const (
	ExitValid   = 0
	ExitInvalid = 1
)

// Validator is the parsing engine. It reads the whole of in and returns its
// verdict. Problems in the input are reported by the validator itself.
type Validator interface {
	Validate(ctx context.Context, name string, in io.Reader) Result
}

// Source supplies the program text. Open is called at most once per run
// and the returned reader is always closed.
type Source interface {
	Name() string
	Open() (io.ReadCloser, error)
}

// Messages are the two lines the driver can print.
type Messages struct {
	Valid   string
	Invalid string
}

// DefaultMessages are used when a Driver is built with zero Messages.
var DefaultMessages = Messages{
	Valid:   "Programa válido!",
	Invalid: "Erro na análise, programa não é válido.",
}

// Driver runs one validation.
type Driver struct {
	validator Validator
	source    Source
	out       io.Writer
	msgs      Messages
}

// New creates a driver that validates src with v and prints to out.
func New(v Validator, src Source, out io.Writer, msgs Messages) *Driver {
	if msgs == (Messages{}) {
		msgs = DefaultMessages
	}
	return &Driver{
		validator: v,
		source:    src,
		out:       out,
		msgs:      msgs,
	}
}

// Run validates the source once, prints the verdict line and returns the
// exit status.
func (d *Driver) Run(ctx context.Context) int {
	logger := ctxlog.FromContext(ctx)

	result := d.validate(ctx)
	logger.Debug("Validator returned.", "source", d.source.Name(), "result", int(result))

	if result.OK() {
		fmt.Fprintln(d.out, d.msgs.Valid)
		return ExitValid
	}
	fmt.Fprintln(d.out, d.msgs.Invalid)
	return ExitInvalid
}

func (d *Driver) validate(ctx context.Context) Result {
	logger := ctxlog.FromContext(ctx)

	in, err := d.source.Open()
	if err != nil {
		logger.Error("Failed to open input.", "source", d.source.Name(), "error", err)
		return Invalid
	}
	defer func() {
		if err := in.Close(); err != nil {
			logger.Warn("Failed to close input.", "source", d.source.Name(), "error", err)
		}
	}()

	return d.validator.Validate(ctx, d.source.Name(), in)
}
