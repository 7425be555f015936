package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

// pageThreshold is the list length above which the TUI switches from plain
// printing to the interactive pager.
const pageThreshold = 40

// TUI implements UI using Bubble Tea for browsing large enumerations.
// Summary and save-result output stay plain.
type TUI struct {
	cmd    *cobra.Command
	simple *SimpleUI
}

// NewTUI creates a new TUI that falls back to the given SimpleUI for
// non-interactive output.
func NewTUI(cmd *cobra.Command, simple *SimpleUI) *TUI {
	return &TUI{cmd: cmd, simple: simple}
}

// DisplaySpaceSummary prints the summary tables.
func (t *TUI) DisplaySpaceSummary(ctx context.Context, summary SpaceSummary) error {
	return t.simple.DisplaySpaceSummary(ctx, summary)
}

// DisplaySaveResult reports where an enumeration was written.
func (t *TUI) DisplaySaveResult(ctx context.Context, dir m.Path, chunks, total int) error {
	return t.simple.DisplaySaveResult(ctx, dir, chunks, total)
}

// DisplayMutations shows the mutation strings. Short lists are printed as-is;
// longer ones open an interactive pager.
func (t *TUI) DisplayMutations(ctx context.Context, mutations []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(mutations) <= pageThreshold {
		return t.simple.DisplayMutations(ctx, mutations)
	}

	program := tea.NewProgram(
		newMutationListModel(mutations),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("mutation pager: %w", err)
	}

	return nil
}

// mutationItem adapts a mutation string to the bubbles list.
type mutationItem string

func (i mutationItem) FilterValue() string { return string(i) }

// mutationDelegate renders one mutation string per row.
type mutationDelegate struct{}

func (d mutationDelegate) Height() int                             { return 1 }
func (d mutationDelegate) Spacing() int                            { return 0 }
func (d mutationDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d mutationDelegate) Render(w io.Writer, lm list.Model, index int, item list.Item) {
	mutation, ok := item.(mutationItem)
	if !ok {
		return
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	if index == lm.Index() {
		style = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("6")).
			Bold(true)
	}

	_, _ = fmt.Fprintf(w, "%6d  %s", index+1, style.Render(string(mutation)))
}

type mutationListModel struct {
	list list.Model
}

func newMutationListModel(mutations []string) mutationListModel {
	items := make([]list.Item, len(mutations))
	for i, mutation := range mutations {
		items[i] = mutationItem(mutation)
	}

	lm := list.New(items, mutationDelegate{}, 0, 0)
	lm.Title = fmt.Sprintf("%d mutations", len(mutations))
	lm.SetShowStatusBar(false)

	return mutationListModel{list: lm}
}

func (mo mutationListModel) Init() tea.Cmd {
	return nil
}

func (mo mutationListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return mo, tea.Quit
		}
	case tea.WindowSizeMsg:
		mo.list.SetSize(msg.Width, msg.Height)
	}

	var cmd tea.Cmd
	mo.list, cmd = mo.list.Update(msg)

	return mo, cmd
}

func (mo mutationListModel) View() string {
	return mo.list.View()
}
