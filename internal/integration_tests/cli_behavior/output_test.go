package cli_behavior

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/fscheck/internal/app"
	"github.com/vk/fscheck/internal/testutil"
)

// Test for: stdout carries exactly one verdict line
func TestCliBehavior_SingleVerdictLine(t *testing.T) {
	for _, src := range []string{"{}", "{", `{ MoveFile() }`} {
		result := testutil.RunProgram(t, src)

		require.NoError(t, result.Err)
		assert.Equal(t, 1, strings.Count(result.Stdout, "\n"), "source %q", src)
		assert.Contains(t, result.Stderr, "App.Run method finished.", "logs go to stderr")
	}
}

// Test for: English output
func TestCliBehavior_English(t *testing.T) {
	valid := testutil.RunProgram(t, "{}", testutil.WithLanguage("en"))
	invalid := testutil.RunProgram(t, "{ var }", testutil.WithLanguage("en"))

	assert.Equal(t, "program is valid\n", valid.Stdout)
	assert.Equal(t, "parse error, program is not valid\n", invalid.Stdout)
	assert.Contains(t, invalid.Stderr, "expected a name, found '}'")
}

// Test for: structured diagnostics
func TestCliBehavior_StructuredDiagnostics(t *testing.T) {
	testCases := []struct {
		format   string
		expected []string
	}{
		{format: "json", expected: []string{`"summary":"Função desconhecida: Copy"`, `"line":2`, `"column":3`}},
		{format: "yaml", expected: []string{"Função desconhecida: Copy", "line: 2", "column: 3"}},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			result := testutil.RunProgram(t, "{\n  Copy(\"a\", \"b\")\n}", testutil.WithDiagnostics(tc.format))

			testutil.AssertInvalid(t, result, tc.expected...)
		})
	}
}

// Test for: the tokens command
func TestCliBehavior_Tokens(t *testing.T) {
	result := testutil.RunProgram(t, "{ var x = 1 }", testutil.WithCommand(app.CommandTokens))

	require.NoError(t, result.Err)
	assert.Equal(t, 0, result.ExitCode)
	assert.Equal(t, strings.Join([]string{
		"1:1\t{\t\"{\"",
		"1:3\tvar\t\"var\"",
		"1:7\tIDENT\t\"x\"",
		"1:9\t=\t\"=\"",
		"1:11\tNUMBER\t\"1\"",
		"1:13\t}\t\"}\"",
		"1:14\tEOF\t\"\"",
	}, "\n")+"\n", result.Stdout)
}

// Test for: invalid configuration is rejected before running
func TestCliBehavior_InvalidConfig(t *testing.T) {
	result := testutil.RunProgram(t, "{}", testutil.WithLanguage("fr"))

	require.Error(t, result.Err)
	assert.Contains(t, result.Err.Error(), "unsupported language")
}
