package keysniff

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// Options wires the command to its environment. Zero values mean the
// process's working directory, stdout and stderr.
type Options struct {
	WorkDir string
	Stdout  io.Writer
	Stderr  io.Writer
}

// ExitError carries a process exit status out of a command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// NewRootCommand builds the keysniff command.
func NewRootCommand(opts Options) *cobra.Command {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	cmd := &cobra.Command{
		Use:           "keysniff [path]",
		Short:         "Find committed secrets in a directory tree",
		Long:          "keysniff walks a directory, matches every line against secret patterns and records masked findings in scan_results.json and scan_results.log.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return run(opts, root)
		},
	}
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	return cmd
}

// Execute runs the keysniff CLI. It should be called by the main package.
func Execute() {
	if err := NewRootCommand(Options{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		var ee *ExitError
		if errors.As(err, &ee) {
			os.Exit(ee.Code)
		}
		os.Exit(2)
	}
}
