package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mutspace.dev/pkg/mutspace/internal/domain"
	m "mutspace.dev/pkg/mutspace/internal/model"
)

// fakeWorkflow captures the arguments passed by commands.
type fakeWorkflow struct {
	summarizeArgs *domain.SourceArgs
	enumerateArgs *domain.EnumerateRunArgs
	viewArgs      *domain.ViewArgs
	err           error
}

func (f *fakeWorkflow) Summarize(_ context.Context, args domain.SourceArgs) error {
	f.summarizeArgs = &args
	return f.err
}

func (f *fakeWorkflow) Enumerate(_ context.Context, args domain.EnumerateRunArgs) error {
	f.enumerateArgs = &args
	return f.err
}

func (f *fakeWorkflow) View(_ context.Context, args domain.ViewArgs) error {
	f.viewArgs = &args
	return f.err
}

func swapWorkflow(t *testing.T, fake domain.Workflow) {
	t.Helper()

	original := workflow
	workflow = fake
	t.Cleanup(func() { workflow = original })
}

func TestSizeCmd_PassesPositions(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	_, err := executeCommand(t, newSizeCmd(), "-p", "YC17=AG", "-p", "TA20=A")
	require.NoError(t, err)

	require.NotNil(t, fake.summarizeArgs)
	assert.Equal(t, m.PositionTable{
		{Key: "YC17", Candidates: "AG"},
		{Key: "TA20", Candidates: "A"},
	}, fake.summarizeArgs.Positions)
}

func TestSizeCmd_PassesTableSource(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	_, err := executeCommand(t, newSizeCmd(),
		"-t", "compat.txt", "-s", "mini.pdb", "--model", "1")
	require.NoError(t, err)

	require.NotNil(t, fake.summarizeArgs)
	assert.Equal(t, m.Path("compat.txt"), fake.summarizeArgs.Table)
	assert.Equal(t, m.Path("mini.pdb"), fake.summarizeArgs.Structure)
	assert.Equal(t, 1, fake.summarizeArgs.ModelID)
}

func TestSizeCmd_InvalidPosition(t *testing.T) {
	fake := &fakeWorkflow{}
	swapWorkflow(t, fake)

	_, err := executeCommand(t, newSizeCmd(), "-p", "broken")
	assert.Error(t, err)
	assert.Nil(t, fake.summarizeArgs)
}
