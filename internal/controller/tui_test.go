package controller

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_ShortListPrintsPlain(t *testing.T) {
	cmd, buf := newBufferedCommand()

	ui := NewTUI(cmd, NewSimpleUI(cmd))
	require.NoError(t, ui.DisplayMutations(context.Background(), []string{"YC17A", "TA20A"}))

	assert.Equal(t, "YC17A\nTA20A\n", buf.String())
}

func TestMutationListModel_QuitKeys(t *testing.T) {
	model := newMutationListModel([]string{"YC17A", "YC17G"})

	keys := []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	}
	for _, key := range keys {
		_, quit := model.Update(key)
		require.NotNil(t, quit, "key %q should quit", key.String())
		assert.IsType(t, tea.QuitMsg{}, quit())
	}
}

func TestMutationListModel_Resize(t *testing.T) {
	model := newMutationListModel([]string{"YC17A"})

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	resized, ok := updated.(mutationListModel)
	require.True(t, ok)
	assert.Equal(t, 80, resized.list.Width())
	assert.Equal(t, 24, resized.list.Height())
}

func TestMutationItem_FilterValue(t *testing.T) {
	assert.Equal(t, "YC17A,TA20A", mutationItem("YC17A,TA20A").FilterValue())
}
