package contract

// Stage is a state of the member pipeline.
type Stage int

const (
	StageStart Stage = iota
	StageDescriptorOpen
	StageHandleParsed
	StageMembersFetched
	StageHandleFreed
	StageDone
	StageFailed
)

var stageNames = [...]string{
	StageStart:          "start",
	StageDescriptorOpen: "descriptor_open",
	StageHandleParsed:   "handle_parsed",
	StageMembersFetched: "members_fetched",
	StageHandleFreed:    "handle_freed",
	StageDone:           "done",
	StageFailed:         "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}
