package cli

import (
	"fmt"

	"github.com/roach88/ctmembers/internal/contract"
)

// Report is the rendered result of one inspection.
type Report struct {
	ContractID string         `json:"contract_id" yaml:"contract_id"`
	Count      int            `json:"count" yaml:"count"`
	Members    []contract.PID `json:"members" yaml:"members"`
}

// NewReport builds a Report from an inspection result.
func NewReport(res *contract.Result) Report {
	return Report{
		ContractID: res.ContractID.String(),
		Count:      res.Members.Len(),
		Members:    res.Members.PIDs(),
	}
}

// String renders the text form:
//
//	contract: 42
//	members (2): [100, 205]
func (r Report) String() string {
	return fmt.Sprintf("contract: %s\nmembers (%d): %s",
		r.ContractID, r.Count, contract.NewMemberList(r.Members...))
}
