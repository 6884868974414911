package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/ctmembers/internal/config"
	"github.com/roach88/ctmembers/internal/contract"
	"github.com/roach88/ctmembers/internal/libcontract"
)

func runInspect(opts *RootOptions, arg string, cmd *cobra.Command) error {
	gen := opts.IDGenerator
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	opts.traceID = gen.Generate()

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return WrapExitError(ExitFailure, "load config", &contract.Error{
			Code:    contract.ErrCodeUsage,
			Message: "invalid configuration",
			Err:     err,
		})
	}
	if opts.Format != "" {
		cfg.Format = opts.Format
	}
	if opts.Verbose {
		cfg.LogLevel = "debug"
	}
	opts.format = cfg.Format

	log := newLogger(cmd.ErrOrStderr(), cfg.LogLevel).With("invocation", opts.traceID)
	log.Debug("config resolved", "root", cfg.Root, "kind", cfg.Kind, "format", cfg.Format)

	id, err := contract.ParseID(arg)
	if err != nil {
		return WrapExitError(ExitFailure, "parse contract id", err)
	}

	out := &OutputFormatter{
		Format:    cfg.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
		TraceID:   opts.traceID,
	}

	lib := opts.Library
	if lib == nil {
		lib = libcontract.System()
	}
	src := contract.NewStatusSource(cfg.Root, cfg.Kind)
	in := contract.NewInspector(src, lib)
	in.Logger = log

	out.VerboseLog("Reading %s", src.Path(id))
	res, err := in.Inspect(id)
	if err != nil {
		return WrapExitError(ExitFailure, "inspect contract", err)
	}
	out.VerboseLog("Contract %s has %d member(s)", id, res.Members.Len())

	return out.Success(NewReport(res))
}
