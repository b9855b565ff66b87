package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	validLine   = "Programa válido!\n"
	invalidLine = "Erro na análise, programa não é válido.\n"
)

// AssertValid checks that a pt-BR run accepted the program.
func AssertValid(t *testing.T, result *HarnessResult) {
	t.Helper()

	require.NoError(t, result.Err)
	assert.Equal(t, 0, result.ExitCode, "stderr:\n%s", result.Stderr)
	assert.Equal(t, validLine, result.Stdout)
}

// AssertInvalid checks that a pt-BR run rejected the program and that the
// diagnostics mention each of the given substrings.
func AssertInvalid(t *testing.T, result *HarnessResult, diagnostics ...string) {
	t.Helper()

	require.NoError(t, result.Err)
	assert.Equal(t, 1, result.ExitCode)
	assert.Equal(t, invalidLine, result.Stdout)
	for _, want := range diagnostics {
		assert.Contains(t, result.Stderr, want)
	}
}

// AssertStderrContains checks that the captured stderr mentions want.
func AssertStderrContains(t *testing.T, result *HarnessResult, want string) {
	t.Helper()

	assert.Contains(t, result.Stderr, want)
}
