package contract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	// DefaultRoot is where ctfs is mounted.
	DefaultRoot = "/system/contract"

	// DefaultKind is the ctfs directory listing contracts of every type.
	DefaultKind = "all"

	statusFile = "status"
)

// StatusSource locates and opens contract status files.
type StatusSource struct {
	Root string
	Kind string
}

// NewStatusSource returns a StatusSource for root and kind. Empty values
// select DefaultRoot and DefaultKind.
func NewStatusSource(root, kind string) *StatusSource {
	if root == "" {
		root = DefaultRoot
	}
	if kind == "" {
		kind = DefaultKind
	}
	return &StatusSource{Root: root, Kind: kind}
}

// Path returns the status file path for id.
func (s *StatusSource) Path(id ID) string {
	return filepath.Join(s.Root, s.Kind, id.String(), statusFile)
}

// Open opens the status file for id. The caller owns the returned file and
// must close it once the status read has been attempted.
func (s *StatusSource) Open(id ID) (*os.File, error) {
	path := s.Path(id)
	f, err := os.Open(path)
	if err != nil {
		return nil, &Error{
			Code:       ErrCodeIO,
			Message:    fmt.Sprintf("failed to open contract status file: %s", openReason(err)),
			ContractID: id,
			Err:        err,
		}
	}
	return f, nil
}

func openReason(err error) string {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return "not found"
	case errors.Is(err, fs.ErrPermission):
		return "permission denied"
	default:
		return "i/o error"
	}
}
