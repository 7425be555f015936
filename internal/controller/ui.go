// Package controller provides output adapters for displaying mutation
// spaces and enumeration results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

// PositionStat is the per-position row of a space summary.
type PositionStat struct {
	Key     string
	Options int
}

// DegreeStat is the per-degree row of a space summary.
type DegreeStat struct {
	Degree int
	Size   int
}

// SpaceSummary carries everything the UI shows about a mutation space.
type SpaceSummary struct {
	Positions []PositionStat
	Degrees   []DegreeStat
	Total     int
}

// UI defines how results are presented. Implementations can use plain text
// or an interactive terminal display.
type UI interface {
	DisplaySpaceSummary(ctx context.Context, summary SpaceSummary) error
	DisplayMutations(ctx context.Context, mutations []string) error
	DisplaySaveResult(ctx context.Context, dir m.Path, chunks, total int) error
}

// NewUI selects the UI implementation: interactive when attached to a
// terminal, plain otherwise.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	simple := NewSimpleUI(cmd)
	if interactive {
		return NewTUI(cmd, simple)
	}

	return simple
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
