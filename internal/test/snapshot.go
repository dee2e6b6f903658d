package test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
	"github/chapool/go-transfer/internal/util"
)

var (
	spewConfig = spew.ConfigState{
		Indent:                  "  ",
		SortKeys:                true,
		DisablePointerAddresses: true,
		DisableCapacities:       true,
	}

	// Snapshoter stores snapshots in /test/testdata/snapshots. Set
	// TEST_UPDATE_GOLDEN=true to overwrite existing snapshots.
	Snapshoter = snapshoter{
		update:   util.GetEnvAsBool("TEST_UPDATE_GOLDEN", false),
		location: filepath.Join(util.GetProjectRootDir(), "test", "testdata", "snapshots"),
	}
)

type snapshoter struct {
	update   bool
	label    string
	location string
}

// Save dumps data with spew and compares it with the stored snapshot of the
// test. A missing snapshot is written and the test passes.
func (s snapshoter) Save(t *testing.T, data ...any) {
	t.Helper()

	s.SaveString(t, spewConfig.Sdump(data...))
}

// SaveString compares the raw string with the stored snapshot of the test.
func (s snapshoter) SaveString(t *testing.T, data string) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	if s.label != "" {
		name += "_" + s.label
	}

	path := filepath.Join(s.location, name+".golden")

	prev, err := os.ReadFile(path)
	if os.IsNotExist(err) || s.update {
		if err := os.MkdirAll(s.location, 0o755); err != nil {
			t.Fatalf("Failed to create snapshot directory: %v", err)
		}

		if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
			t.Fatalf("Failed to write snapshot %q: %v", path, err)
		}

		if s.update {
			t.Logf("Updated snapshot %q", path)
		}

		return
	}
	if err != nil {
		t.Fatalf("Failed to read snapshot %q: %v", path, err)
	}

	if string(prev) == data {
		return
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(prev)),
		B:        difflib.SplitLines(data),
		FromFile: "Snapshot",
		ToFile:   "Current",
		Context:  3,
	})
	if err != nil {
		t.Fatalf("Failed to diff snapshot %q: %v", path, err)
	}

	t.Errorf("Snapshot %q does not match:\n%s", name, diff)
}

// Label returns a copy of s that stores its snapshot under an additional
// label, for tests saving more than one snapshot.
func (s snapshoter) Label(label string) snapshoter {
	s.label = label
	return s
}

func (s snapshoter) Update(update bool) snapshoter {
	s.update = update
	return s
}

func (s snapshoter) Location(location string) snapshoter {
	s.location = location
	return s
}
