package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/ctmembers/internal/contract"
	"github.com/roach88/ctmembers/internal/libcontract"
)

// RootOptions holds flags and injectable dependencies.
type RootOptions struct {
	Verbose    bool
	Format     string // "text" | "json" | "yaml"; empty defers to config
	ConfigPath string

	// Library overrides the native contract library (for testing).
	// If nil, defaults to libcontract.System().
	Library libcontract.Library

	// IDGenerator overrides the invocation id generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	IDGenerator IDGenerator

	// resolved output settings, filled in as the command runs so failures
	// are reported in the same format a success would have been.
	format  string
	traceID string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json", "yaml"}

// NewRootCommand creates the ctmembers command.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	if opts == nil {
		opts = &RootOptions{}
	}

	cmd := &cobra.Command{
		Use:   "ctmembers <ctid>",
		Short: "List the member processes of a contract",
		Long: `List the member processes of a process contract.

ctmembers reads /system/contract/all/<ctid>/status through libcontract and
prints the pids currently in the contract. Nothing is printed on failure;
the cause goes to stderr and the exit code is 1.

Examples:
  ctmembers 42
  ctmembers --format json 42
  CTMEMBERS_KIND=process ctmembers -v 42`,
		Args:          contractIDArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Format != "" && !isValidFormat(opts.Format) {
				return usageError(fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(opts, args[0], cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging on stderr")
	cmd.Flags().StringVar(&opts.Format, "format", "", "output format (text|json|yaml)")
	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "config file (.yaml, .yml or .toml)")

	return cmd
}

// Main runs ctmembers with args and returns the process exit code.
// Reports go to stdout; errors and logs go to stderr.
func Main(opts *RootOptions, args []string, stdout, stderr io.Writer) int {
	if opts == nil {
		opts = &RootOptions{}
	}
	if args == nil {
		// cobra falls back to os.Args on a nil slice
		args = []string{}
	}
	cmd := NewRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	reportError(opts, cmd, err, stderr)
	return GetExitCode(err)
}

// contractIDArg requires exactly one positional argument.
func contractIDArg(cmd *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		return usageError("missing contract id")
	case len(args) > 1:
		return usageError(fmt.Sprintf("expected one contract id, got %d arguments", len(args)))
	}
	return nil
}

// usageError reports a command line mistake. reportError files errors that
// carry no contract.Error under USAGE.
func usageError(msg string) error {
	return NewExitError(ExitFailure, msg)
}

// reportError writes err to stderr in the resolved output format.
func reportError(opts *RootOptions, cmd *cobra.Command, err error, stderr io.Writer) {
	format := opts.format
	if format == "" && isValidFormat(opts.Format) {
		format = opts.Format
	}
	f := &OutputFormatter{
		Format:    format,
		Writer:    stderr,
		ErrWriter: stderr,
		Verbose:   opts.Verbose,
		TraceID:   opts.traceID,
	}

	code := contract.ErrCodeUsage
	message := err.Error()
	var details interface{}

	var ce *contract.Error
	if errors.As(err, &ce) {
		code = ce.Code
		message = ce.Describe()
		if ce.ContractID != 0 {
			details = map[string]string{"contract_id": ce.ContractID.String()}
		}
	}

	_ = f.Error(string(code), message, details)
	if code == contract.ErrCodeUsage && (format == "" || format == "text") {
		fmt.Fprintf(stderr, "Usage: %s\n", cmd.UseLine())
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
