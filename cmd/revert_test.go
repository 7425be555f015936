package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRevertCmd(t *testing.T) {
	out, err := executeCommand(t, newRevertCmd(), "YC17T")
	require.NoError(t, err)
	assert.Equal(t, "TC17Y\n", out)
}

func TestRevertCmd_MultiPoint(t *testing.T) {
	out, err := executeCommand(t, newRevertCmd(), "TC17Y,AA20T", "GB5W")
	require.NoError(t, err)
	assert.Equal(t, "YC17T,TA20A\nWB5G\n", out)
}

func TestRevertCmd_NoArgs(t *testing.T) {
	_, err := executeCommand(t, newRevertCmd())
	assert.Error(t, err)
}
