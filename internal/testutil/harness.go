// Package testutil runs whole fscheck invocations for integration tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/fscheck/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	ExitCode int
	Stdout   string
	// Stderr holds both logs and diagnostics.
	Stderr string
	Err    error
}

// Option adjusts the configuration a harness run starts from.
type Option func(cfg *app.Config)

// WithLanguage selects the output language.
func WithLanguage(lang string) Option {
	return func(cfg *app.Config) { cfg.Language = lang }
}

// WithDiagnostics selects the diagnostics format.
func WithDiagnostics(format string) Option {
	return func(cfg *app.Config) { cfg.DiagnosticsFormat = format }
}

// WithoutSemanticChecks turns the semantic pass off.
func WithoutSemanticChecks() Option {
	return func(cfg *app.Config) { cfg.SemanticChecks = false }
}

// WithCommand selects the command to run.
func WithCommand(command string) Option {
	return func(cfg *app.Config) { cfg.Command = command }
}

// RunProgram writes src to a temporary file and validates it with a default
// background context.
func RunProgram(t *testing.T, src string, opts ...Option) *HarnessResult {
	t.Helper()
	return RunProgramWithContext(context.Background(), t, src, opts...)
}

// RunProgramWithContext writes src to a temporary file and runs the app on
// it with the context provided by the caller. Diagnostics are uncolored and
// logs are captured at debug level.
func RunProgramWithContext(ctx context.Context, t *testing.T, src string, opts ...Option) *HarnessResult {
	t.Helper()

	path := filepath.Join(t.TempDir(), "program.fs")
	require.NoError(t, os.WriteFile(path, []byte(src), 0600))

	cfg := app.DefaultConfig()
	cfg.InputPath = path
	cfg.LogLevel = "debug"
	cfg.Color = false
	for _, opt := range opts {
		opt(&cfg)
	}
	return run(ctx, t, cfg, "")
}

// RunStdin validates src read from standard input.
func RunStdin(t *testing.T, src string, opts ...Option) *HarnessResult {
	t.Helper()

	cfg := app.DefaultConfig()
	cfg.LogLevel = "debug"
	cfg.Color = false
	for _, opt := range opts {
		opt(&cfg)
	}
	return run(context.Background(), t, cfg, src)
}

func run(ctx context.Context, t *testing.T, cfg app.Config, stdin string) *HarnessResult {
	t.Helper()

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return &HarnessResult{Err: err}
	}

	stdout, stderr := &SafeBuffer{}, &SafeBuffer{}
	testApp, err := app.NewApp(app.Streams{In: strings.NewReader(stdin), Out: stdout, Err: stderr}, validated)
	if err != nil {
		return &HarnessResult{Err: fmt.Errorf("failed to create app: %w", err)}
	}

	code := testApp.Run(ctx)

	if os.Getenv("FSCHECK_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), stderr.String())
	}

	return &HarnessResult{
		ExitCode: code,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}
