package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/fscheck/internal/app"
	"github.com/vk/fscheck/internal/cli"
)

// main is the entrypoint for the fscheck application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	code, err := run(os.Stdin, os.Stdout, os.Stderr, os.Args[1:])
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(code)
}

// run encapsulates the main application logic for easier testing and error
// handling. It returns the exit status of a completed run.
func run(in io.Reader, outW, errW io.Writer, args []string) (code int, err error) {
	// Recover here so a startup bug still ends with a clean message.
	defer func() {
		if r := recover(); r != nil {
			code, err = 1, fmt.Errorf("application startup panicked | %v", r)
		}
	}()

	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return 0, err
	}
	if shouldExit {
		return 0, nil
	}

	fscheckApp, err := app.NewApp(app.Streams{In: in, Out: outW, Err: errW}, appConfig)
	if err != nil {
		return 0, &cli.ExitError{Code: 2, Message: err.Error()}
	}

	return fscheckApp.Run(context.Background()), nil
}
