package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/go-transfer/internal/util"
)

type components struct {
	Name    string
	Numbers []int
	Skipped *int `wire:"-"`
	hidden  string
}

func TestIsStructInitialized(t *testing.T) {
	s := &components{Name: "a", Numbers: []int{1}}
	require.NoError(t, util.IsStructInitialized(s))
	require.NoError(t, util.IsStructInitialized(*s))

	s.Numbers = nil
	err := util.IsStructInitialized(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Numbers")

	var nilStruct *components
	require.Error(t, util.IsStructInitialized(nilStruct))
	require.Error(t, util.IsStructInitialized(42))
	assert.Empty(t, s.hidden)
}
