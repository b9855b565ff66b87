package diag

import (
	"encoding/json"
	"io"

	"github.com/hashicorp/hcl/v2"
	"gopkg.in/yaml.v3"
)

// Record is the flat, serializable form of one diagnostic.
type Record struct {
	Severity string `json:"severity" yaml:"severity"`
	Summary  string `json:"summary" yaml:"summary"`
	Detail   string `json:"detail,omitempty" yaml:"detail,omitempty"`
	Filename string `json:"filename,omitempty" yaml:"filename,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int    `json:"column,omitempty" yaml:"column,omitempty"`
	Byte     int    `json:"byte" yaml:"byte"`
}

type document struct {
	Diagnostics []Record `json:"diagnostics" yaml:"diagnostics"`
}

// Records flattens diagnostics into Records, preserving order.
func Records(diags hcl.Diagnostics) []Record {
	out := make([]Record, 0, len(diags))
	for _, d := range diags {
		rec := Record{
			Severity: severityName(d.Severity),
			Summary:  d.Summary,
			Detail:   d.Detail,
		}
		if d.Subject != nil {
			rec.Filename = d.Subject.Filename
			rec.Line = d.Subject.Start.Line
			rec.Column = d.Subject.Start.Column
			rec.Byte = d.Subject.Start.Byte
		}
		out = append(out, rec)
	}
	return out
}

// JSONReporter writes one JSON document per report.
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a JSON reporter writing to w.
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// Report implements Reporter.
func (r *JSONReporter) Report(diags hcl.Diagnostics) int {
	_ = json.NewEncoder(r.w).Encode(document{Diagnostics: Records(diags)})
	return countErrors(diags)
}

// YAMLReporter writes one YAML document per report.
type YAMLReporter struct {
	w io.Writer
}

// NewYAMLReporter creates a YAML reporter writing to w.
func NewYAMLReporter(w io.Writer) *YAMLReporter {
	return &YAMLReporter{w: w}
}

// Report implements Reporter.
func (r *YAMLReporter) Report(diags hcl.Diagnostics) int {
	enc := yaml.NewEncoder(r.w)
	enc.SetIndent(2)
	_ = enc.Encode(document{Diagnostics: Records(diags)})
	_ = enc.Close()
	return countErrors(diags)
}

func severityName(s hcl.DiagnosticSeverity) string {
	switch s {
	case hcl.DiagError:
		return "error"
	case hcl.DiagWarning:
		return "warning"
	default:
		return "invalid"
	}
}
