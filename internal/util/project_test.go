package util_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/util"
)

func TestGetModulePath(t *testing.T) {
	assert.Equal(t, "github/chapool/go-transfer", util.GetModulePath(util.GetProjectRootDir()))

	dir := t.TempDir()
	assert.Empty(t, util.GetModulePath(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/other\n\ngo 1.24\n"), 0o600))
	assert.Equal(t, "example.com/other", util.GetModulePath(dir))
}
