package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

var (
	totalStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplaySpaceSummary prints per-position option counts and per-degree
// subspace sizes as tables, followed by the total.
func (s *SimpleUI) DisplaySpaceSummary(ctx context.Context, summary SpaceSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n%s", headerStyle.Render("Positions"), renderPositionTable(summary.Positions))
	s.printf("\n%s\n%s", headerStyle.Render("Subspace sizes"), renderDegreeTable(summary.Degrees, summary.Total))
	s.printf("\n%s\n", totalStyle.Render(fmt.Sprintf("Total mutations: %d", summary.Total)))

	return nil
}

func renderPositionTable(positions []PositionStat) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Position", "Substitutions"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	for _, pos := range positions {
		table.Append([]string{pos.Key, fmt.Sprintf("%d", pos.Options)})
	}

	table.Render()

	return buf.String()
}

func renderDegreeTable(degrees []DegreeStat, total int) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Degree", "Mutations"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	for _, deg := range degrees {
		table.Append([]string{fmt.Sprintf("%d", deg.Degree), fmt.Sprintf("%d", deg.Size)})
	}

	table.SetFooter([]string{"Total", fmt.Sprintf("%d", total)})
	table.Render()

	return buf.String()
}

// DisplayMutations prints one mutation string per line.
func (s *SimpleUI) DisplayMutations(ctx context.Context, mutations []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, mutation := range mutations {
		s.printf("%s\n", mutation)
	}

	return nil
}

// DisplaySaveResult reports where an enumeration was written.
func (s *SimpleUI) DisplaySaveResult(ctx context.Context, dir m.Path, chunks, total int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", totalStyle.Render(
		fmt.Sprintf("Wrote %d mutation(s) to %s (%d chunk file(s))", total, dir, chunks),
	))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
