package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vk/fscheck/internal/app"
	"github.com/vk/fscheck/internal/config"
	"github.com/vk/fscheck/internal/filescript/ast"
	"github.com/vk/fscheck/internal/i18n"
)

var (
	// Version is set during build.
	Version = "dev"
	// Commit is set during build.
	Commit = "unknown"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// options receives the persistent flags.
type options struct {
	configPath  string
	lang        string
	logLevel    string
	logFormat   string
	diagnostics string
	noColor     bool
	noSemantic  bool
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}

	var result *app.Config
	root := newRootCommand(&result)
	root.SetArgs(args)
	root.SetOut(output)
	root.SetErr(output)

	if err := root.ExecuteContext(context.Background()); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if result == nil {
		slog.Debug("No command to run, exiting.")
		return nil, true, nil
	}
	slog.Debug("CLI parser finished successfully.", "config", result)
	return result, false, nil
}

func newRootCommand(result **app.Config) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "fscheck [flags] [PATH]",
		Short: "fscheck - validates FileScript programs",
		Long: `fscheck reads a FileScript program from PATH, or from standard input when
PATH is absent or "-", and reports whether it is valid.

Exactly one line is printed on standard output. Diagnostics and logs go to
standard error. The exit status is 0 for a valid program, 1 for an invalid
one and 2 for a usage error.

Built-in functions:
` + builtinHelp(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, opts, app.CommandValidate, args)
			if err != nil {
				return err
			}
			*result = cfg
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Path to an HCL settings file.")
	flags.StringVar(&opts.lang, "lang", "pt-BR", "Message language. Options: "+i18n.SupportedNames()+", "+i18n.Auto+".")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.StringVar(&opts.diagnostics, "diagnostics", "text", "Diagnostics format. Options: 'text', 'json', 'yaml', 'none'.")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored diagnostics.")
	flags.BoolVar(&opts.noSemantic, "no-semantic", false, "Only check syntax; skip the semantic checks.")

	root.AddCommand(&cobra.Command{
		Use:   "tokens [PATH]",
		Short: "Print the token stream of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, opts, app.CommandTokens, args)
			if err != nil {
				return err
			}
			*result = cfg
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fscheck version %s (commit: %s)\n", Version, Commit)
		},
	})

	return root
}

// buildConfig layers explicitly set flags over the settings file over the
// defaults, then validates the result.
func buildConfig(cmd *cobra.Command, opts *options, command string, args []string) (*app.Config, error) {
	cfg := app.DefaultConfig()
	cfg.Command = command
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	if opts.configPath != "" {
		settings, err := config.Load(cmd.Context(), opts.configPath)
		if err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
		applySettings(&cfg, settings)
		slog.Debug("Settings file applied.", "path", opts.configPath)
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language = opts.lang
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = opts.logFormat
	}
	if flags.Changed("diagnostics") {
		cfg.DiagnosticsFormat = opts.diagnostics
	}
	if flags.Changed("no-color") {
		cfg.Color = !opts.noColor
	}
	if flags.Changed("no-semantic") {
		cfg.SemanticChecks = !opts.noSemantic
	}

	validated, err := app.NewConfig(cfg)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	return validated, nil
}

func applySettings(cfg *app.Config, s *config.Settings) {
	if s.Language != nil {
		cfg.Language = *s.Language
	}
	if s.LogLevel != nil {
		cfg.LogLevel = *s.LogLevel
	}
	if s.LogFormat != nil {
		cfg.LogFormat = *s.LogFormat
	}
	if d := s.Diagnostics; d != nil {
		if d.Format != nil {
			cfg.DiagnosticsFormat = *d.Format
		}
		if d.Color != nil {
			cfg.Color = *d.Color
		}
		if d.Width != nil {
			cfg.Width = *d.Width
		}
	}
	if c := s.Checks; c != nil && c.Semantic != nil {
		cfg.SemanticChecks = *c.Semantic
	}
}

func builtinHelp() string {
	var b strings.Builder
	for _, fn := range ast.Builtins() {
		kind := "statement"
		if fn.Yields() {
			kind = "returns " + fn.Result.FriendlyName()
		}
		fmt.Fprintf(&b, "  %-11s %d argument(s), %s\n", fn.Name, fn.Arity, kind)
	}
	return b.String()
}
