package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type runResult struct {
	code   int
	stdout string
	stderr string
}

// runApp builds an App around cfg and runs it with the given stdin.
func runApp(t *testing.T, cfg Config, stdin string) runResult {
	t.Helper()

	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out, errW := &bytes.Buffer{}, &bytes.Buffer{}
	a, err := NewApp(Streams{In: strings.NewReader(stdin), Out: out, Err: errW}, validated)
	require.NoError(t, err)

	code := a.Run(context.Background())
	return runResult{code: code, stdout: out.String(), stderr: errW.String()}
}

func writeProgram(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.fs")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))
	return path
}

func TestApp_ValidProgramFromFile(t *testing.T) {
	// --- Arrange ---
	cfg := DefaultConfig()
	cfg.InputPath = writeProgram(t, `{ var a = "x.txt" CopyFile(a, "y.txt") }`)

	// --- Act ---
	res := runApp(t, cfg, "")

	// --- Assert ---
	assert.Equal(t, 0, res.code)
	assert.Equal(t, "Programa válido!\n", res.stdout)
	assert.Empty(t, res.stderr)
}

func TestApp_InvalidProgramFromStdin(t *testing.T) {
	cfg := DefaultConfig()

	res := runApp(t, cfg, "{ var a }")

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Erro na análise, programa não é válido.\n", res.stdout)
	assert.Contains(t, res.stderr, "Esperado '=', encontrado '}'")
	assert.Contains(t, res.stderr, "<stdin> line 1")
}

func TestApp_EnglishMessages(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Language = "en"

	res := runApp(t, cfg, "{}")
	assert.Equal(t, "program is valid\n", res.stdout)

	res = runApp(t, cfg, "}")
	assert.Equal(t, "parse error, program is not valid\n", res.stdout)
	assert.Contains(t, res.stderr, "expected '{', found '}'")
}

func TestApp_MissingFile(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputPath = filepath.Join(t.TempDir(), "missing.fs")

	res := runApp(t, cfg, "")

	assert.Equal(t, 1, res.code)
	assert.Equal(t, "Erro na análise, programa não é válido.\n", res.stdout)
	assert.Contains(t, res.stderr, "Failed to open input.")
}

func TestApp_DiagnosticsFormats(t *testing.T) {
	testCases := []struct {
		format   string
		contains string
	}{
		{format: "json", contains: `"severity":"error"`},
		{format: "yaml", contains: "severity: error"},
		{format: "none", contains: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.format, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DiagnosticsFormat = tc.format

			res := runApp(t, cfg, `{ MoveFile("a") }`)

			assert.Equal(t, 1, res.code)
			if tc.contains == "" {
				assert.Empty(t, res.stderr)
				return
			}
			assert.Contains(t, res.stderr, tc.contains)
		})
	}
}

func TestApp_SemanticChecksToggle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SemanticChecks = false

	res := runApp(t, cfg, `{ MoveFile("a") }`)

	assert.Equal(t, 0, res.code)
	assert.Equal(t, "Programa válido!\n", res.stdout)
}

func TestApp_DebugLogsGoToStderr(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.LogFormat = "json"

	res := runApp(t, cfg, "{}")

	assert.Equal(t, "Programa válido!\n", res.stdout, "stdout carries only the verdict")
	assert.Contains(t, res.stderr, `"msg":"App.Run method started."`)
}

func TestApp_Tokens(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Command = CommandTokens

	res := runApp(t, cfg, "{ Wait(1) }")

	assert.Equal(t, 0, res.code)
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	require.Len(t, lines, 7)
	assert.Equal(t, "1:1\t{\t\"{\"", lines[0])
	assert.Equal(t, "1:3\tIDENT\t\"Wait\"", lines[1])
	assert.Equal(t, "1:12\tEOF\t\"\"", lines[6])
}

func TestApp_TokensLexicalError(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Command = CommandTokens
	cfg.Language = "en"

	res := runApp(t, cfg, `{ "open`)

	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, "ILLEGAL")
	assert.Contains(t, res.stderr, "unterminated string")
}

func TestApp_LanguageAndMessages(t *testing.T) {
	cfg, err := NewConfig(DefaultConfig())
	require.NoError(t, err)

	a, err := NewApp(Streams{Out: &bytes.Buffer{}, Err: &bytes.Buffer{}}, cfg)
	require.NoError(t, err)

	assert.Equal(t, language.BrazilianPortuguese, a.Language())
	assert.Equal(t, "Programa válido!", a.Messages().Valid)
}
