package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResidueCmd_Match(t *testing.T) {
	out, err := executeCommand(t, newResidueCmd(), "-s", testStructure(), "YC17", "TA20")
	require.NoError(t, err)
	assert.Equal(t, "YC17\tok\nTA20\tok\n", out)
}

func TestResidueCmd_Mismatch(t *testing.T) {
	out, err := executeCommand(t, newResidueCmd(), "-s", testStructure(), "GC17")
	require.NoError(t, err)
	assert.Equal(t, "GC17\tmismatch\n", out)
}

func TestResidueCmd_MissingResidue(t *testing.T) {
	_, err := executeCommand(t, newResidueCmd(), "-s", testStructure(), "YC99")
	assert.Error(t, err)
}

func TestResidueCmd_InvalidKey(t *testing.T) {
	_, err := executeCommand(t, newResidueCmd(), "-s", testStructure(), "Y1")
	assert.Error(t, err)
}
