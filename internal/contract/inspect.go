package contract

import (
	"log/slog"

	"github.com/roach88/ctmembers/internal/libcontract"
)

// Result is the outcome of a successful inspection.
type Result struct {
	ContractID ID
	Members    MemberList
}

// Inspector runs the member pipeline for a single contract.
type Inspector struct {
	// Source opens status files. Required.
	Source *StatusSource

	// Lib is the native contract library. Required.
	Lib libcontract.Library

	// Detail is passed to ct_status_read. The zero value is DetailCommon,
	// so NewInspector sets DetailAll.
	Detail libcontract.Detail

	// Logger receives stage transitions at debug level. Nil uses
	// slog.Default().
	Logger *slog.Logger

	// OnStage, if set, is called on every stage transition.
	OnStage func(Stage)
}

// NewInspector returns an Inspector requesting full status detail.
func NewInspector(source *StatusSource, lib libcontract.Library) *Inspector {
	return &Inspector{
		Source: source,
		Lib:    lib,
		Detail: libcontract.DetailAll,
	}
}

// Inspect reads the member pids of contract id.
//
// The status descriptor is closed right after the status read, whatever its
// outcome. The status handle is released on every path once it exists,
// including when the member query fails; that release happens before
// Failed is reported and is not announced as HandleFreed. On error the
// returned Result is nil.
func (in *Inspector) Inspect(id ID) (*Result, error) {
	log := in.logger().With("contract", id.String())
	in.enter(log, StageStart)

	f, err := in.Source.Open(id)
	if err != nil {
		return nil, in.fail(log, err)
	}
	in.enter(log, StageDescriptorOpen, "path", f.Name())

	h, err := ReadStatus(in.Lib, id, f, in.Detail)
	if closeErr := f.Close(); closeErr != nil {
		log.Warn("closing status descriptor", "error", closeErr)
	}
	if err != nil {
		return nil, in.fail(log, err)
	}
	defer h.Close()
	in.enter(log, StageHandleParsed, "detail", in.Detail.String())

	members, err := h.Members()
	if err != nil {
		h.Close()
		return nil, in.fail(log, err)
	}
	in.enter(log, StageMembersFetched, "count", members.Len())

	h.Close()
	in.enter(log, StageHandleFreed)

	in.enter(log, StageDone)
	return &Result{ContractID: id, Members: members}, nil
}

func (in *Inspector) logger() *slog.Logger {
	if in.Logger != nil {
		return in.Logger
	}
	return slog.Default()
}

func (in *Inspector) enter(log *slog.Logger, s Stage, attrs ...any) {
	log.Debug("stage", append([]any{"stage", s.String()}, attrs...)...)
	if in.OnStage != nil {
		in.OnStage(s)
	}
}

func (in *Inspector) fail(log *slog.Logger, err error) error {
	log.Debug("stage", "stage", StageFailed.String(), "code", string(CodeOf(err)), "error", err)
	if in.OnStage != nil {
		in.OnStage(StageFailed)
	}
	return err
}
