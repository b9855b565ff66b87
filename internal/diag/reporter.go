// Package diag implements the error-reporting hook used by the parsing
// engine. Diagnostics are hcl.Diagnostics so they carry source ranges and
// can be rendered with snippets by the hcl text writer.
package diag

import (
	"io"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/mattn/go-isatty"
)

// Reporter receives the diagnostics produced by one validation run and
// returns how many of them were errors.
type Reporter interface {
	Report(diags hcl.Diagnostics) int
}

// SourceAware is implemented by reporters that can quote source text.
type SourceAware interface {
	AddSource(filename string, src []byte)
}

// Discard drops every diagnostic.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(diags hcl.Diagnostics) int { return countErrors(diags) }

// TextReporter renders diagnostics as human-readable text with source
// snippets.
type TextReporter struct {
	w     io.Writer
	files map[string]*hcl.File
	width uint
	color bool
}

// NewTextReporter creates a text reporter. A width of zero disables
// wrapping.
func NewTextReporter(w io.Writer, width uint, color bool) *TextReporter {
	return &TextReporter{
		w:     w,
		files: make(map[string]*hcl.File),
		width: width,
		color: color,
	}
}

// AddSource registers the text of a file so snippets can be printed.
func (r *TextReporter) AddSource(filename string, src []byte) {
	r.files[filename] = &hcl.File{Bytes: src}
}

// Report implements Reporter.
func (r *TextReporter) Report(diags hcl.Diagnostics) int {
	wr := hcl.NewDiagnosticTextWriter(r.w, r.files, r.width, r.color)
	// A failed write to stderr leaves nothing better to do.
	_ = wr.WriteDiagnostics(diags)
	return countErrors(diags)
}

// IsTerminal reports whether w is a terminal that can show colors.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func countErrors(diags hcl.Diagnostics) int {
	n := 0
	for _, d := range diags {
		if d.Severity == hcl.DiagError {
			n++
		}
	}
	return n
}
