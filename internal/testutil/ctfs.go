package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"gopkg.in/yaml.v3"
)

// ContractFixture places a StatusFixture under a contract id.
type ContractFixture struct {
	ID            int32 `yaml:"id"`
	StatusFixture `yaml:",inline"`
}

// WriteStatusTree lays out a fake ctfs under root:
//
//	<root>/<kind>/<id>/status
//
// Each status file holds the YAML encoding of its StatusFixture.
func WriteStatusTree(t testing.TB, root, kind string, contracts ...ContractFixture) {
	t.Helper()
	for _, c := range contracts {
		dir := filepath.Join(root, kind, strconv.FormatInt(int64(c.ID), 10))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
		data, err := yaml.Marshal(c.StatusFixture)
		if err != nil {
			t.Fatalf("marshal fixture %d: %v", c.ID, err)
		}
		path := filepath.Join(dir, "status")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}
