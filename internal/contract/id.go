package contract

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ID is a contract id (ctid_t).
type ID int32

// ParseID parses a contract id from user input.
//
// Input is NFKC folded first so compatibility digits (for example
// full-width "４２") read as their ASCII form. The result must be a
// positive decimal that fits in a ctid_t, written without a sign.
func ParseID(s string) (ID, error) {
	raw := strings.TrimSpace(norm.NFKC.String(s))
	if raw == "" {
		return 0, &Error{Code: ErrCodeUsage, Message: "contract id is empty"}
	}
	if raw[0] == '+' || raw[0] == '-' {
		return 0, &Error{
			Code:    ErrCodeUsage,
			Message: fmt.Sprintf("invalid contract id %q: sign not allowed", s),
		}
	}
	n, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, &Error{
			Code:    ErrCodeUsage,
			Message: fmt.Sprintf("invalid contract id %q", s),
			Err:     err,
		}
	}
	if n == 0 {
		return 0, &Error{Code: ErrCodeUsage, Message: "contract id must be positive"}
	}
	return ID(n), nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
