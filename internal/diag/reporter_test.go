package diag

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/hcl/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleDiags() hcl.Diagnostics {
	return hcl.Diagnostics{
		{
			Severity: hcl.DiagError,
			Summary:  "expected '=', found number 3",
			Subject: &hcl.Range{
				Filename: "prog.fs",
				Start:    hcl.Pos{Line: 2, Column: 5, Byte: 6},
				End:      hcl.Pos{Line: 2, Column: 6, Byte: 7},
			},
		},
		{
			Severity: hcl.DiagWarning,
			Summary:  "variable y is read before it is assigned",
			Detail:   "unassigned names evaluate to their own name as a string",
		},
	}
}

func TestRecords(t *testing.T) {
	expected := []Record{
		{Severity: "error", Summary: "expected '=', found number 3", Filename: "prog.fs", Line: 2, Column: 5, Byte: 6},
		{Severity: "warning", Summary: "variable y is read before it is assigned", Detail: "unassigned names evaluate to their own name as a string"},
	}

	if diff := cmp.Diff(expected, Records(sampleDiags())); diff != "" {
		t.Errorf("Records mismatch (-want +got):\n%s", diff)
	}
}

func TestTextReporter_PrintsSnippet(t *testing.T) {
	// --- Arrange ---
	out := &bytes.Buffer{}
	r := NewTextReporter(out, 0, false)
	r.AddSource("prog.fs", []byte("{\n  x 3\n}\n"))

	// --- Act ---
	n := r.Report(sampleDiags()[:1])

	// --- Assert ---
	assert.Equal(t, 1, n)
	text := out.String()
	assert.Contains(t, text, "Error: expected '=', found number 3")
	assert.Contains(t, text, "prog.fs line 2")
	assert.Contains(t, text, "x 3")
}

func TestTextReporter_WithoutSource(t *testing.T) {
	out := &bytes.Buffer{}
	r := NewTextReporter(out, 0, false)

	n := r.Report(sampleDiags())

	assert.Equal(t, 1, n)
	assert.Contains(t, out.String(), "Warning: variable y is read before it is assigned")
}

func TestJSONReporter(t *testing.T) {
	out := &bytes.Buffer{}

	n := NewJSONReporter(out).Report(sampleDiags())

	assert.Equal(t, 1, n)
	var doc document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Diagnostics, 2)
	assert.Equal(t, "error", doc.Diagnostics[0].Severity)
	assert.Equal(t, 2, doc.Diagnostics[0].Line)
	assert.Equal(t, "warning", doc.Diagnostics[1].Severity)
}

func TestYAMLReporter(t *testing.T) {
	out := &bytes.Buffer{}

	n := NewYAMLReporter(out).Report(sampleDiags())

	assert.Equal(t, 1, n)
	assert.Contains(t, out.String(), "diagnostics:")
	var doc document
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Diagnostics, 2)
	assert.Equal(t, "prog.fs", doc.Diagnostics[0].Filename)
	assert.Equal(t, 5, doc.Diagnostics[0].Column)
}

func TestDiscard(t *testing.T) {
	assert.Equal(t, 1, Discard.Report(sampleDiags()))
	assert.Equal(t, 0, Discard.Report(nil))
}

func TestIsTerminal_NonFileWriter(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
