package domain

import (
	"context"
	"fmt"
	"log/slog"

	"mutspace.dev/pkg/mutspace/internal/adapter"
	"mutspace.dev/pkg/mutspace/internal/controller"
	m "mutspace.dev/pkg/mutspace/internal/model"
)

// Workflow drives the CLI use cases: summarising a mutation space and
// enumerating it to the terminal or to disk.
type Workflow interface {
	Summarize(ctx context.Context, args SourceArgs) error
	Enumerate(ctx context.Context, args EnumerateRunArgs) error
	View(ctx context.Context, args ViewArgs) error
}

// SourceArgs selects how a mutation space is built: either an explicit
// position table, or a compatibility table resolved against a structure.
type SourceArgs struct {
	Positions m.PositionTable
	Table     m.Path
	Structure m.Path
	ModelID   int
}

// ViewArgs selects a previously saved enumeration to display.
type ViewArgs struct {
	Output m.Path
}

// EnumerateRunArgs configures the enumerate use case.
type EnumerateRunArgs struct {
	SourceArgs

	Degree    *int
	Limit     int
	Output    m.Path // empty means display instead of save
	ChunkSize int
}

type workflow struct {
	adapter.MutationStore
	controller.UI
	SpaceBuilder
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(store adapter.MutationStore, ui controller.UI, builder SpaceBuilder) Workflow {
	return &workflow{
		MutationStore: store,
		UI:            ui,
		SpaceBuilder:  builder,
	}
}

// Summarize builds the space and displays per-position and per-degree sizes.
func (w *workflow) Summarize(ctx context.Context, args SourceArgs) error {
	space, err := w.buildSpace(args)
	if err != nil {
		return err
	}

	return w.DisplaySpaceSummary(ctx, summarize(space))
}

// Enumerate builds the space, generates the requested subspace and either
// displays it or writes it to disk in chunks. The size is computed first so
// infeasible cardinalities surface in the log before generation starts.
func (w *workflow) Enumerate(ctx context.Context, args EnumerateRunArgs) error {
	space, err := w.buildSpace(args.SourceArgs)
	if err != nil {
		return err
	}

	expected := space.TotalSize()
	if args.Degree != nil {
		expected = space.Size(*args.Degree, false)
	}

	slog.Info("enumerating mutation space",
		"positions", space.NumPositions(),
		"degree", m.DegreeLabel(args.Degree),
		"expected", expected,
	)

	mutations, err := space.Enumerate(EnumerateArgs{Degree: args.Degree, Limit: args.Limit})
	if err != nil {
		return err
	}

	if args.Output == "" {
		return w.DisplayMutations(ctx, mutations)
	}

	chunks, err := w.SaveMutations(args.Output, mutations, args.ChunkSize)
	if err != nil {
		return err
	}

	manifest := m.SpaceManifest{
		Structure: string(args.Structure),
		Table:     string(args.Table),
		Positions: space.NumPositions(),
		Degree:    m.DegreeLabel(args.Degree),
		Total:     len(mutations),
		ChunkSize: args.ChunkSize,
		Chunks:    chunkNames(chunks),
	}
	if err := w.SaveManifest(args.Output, manifest); err != nil {
		return err
	}

	return w.DisplaySaveResult(ctx, args.Output, len(chunks), len(mutations))
}

// View loads a saved enumeration through its manifest and displays the
// mutation strings in chunk order.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	manifest, err := w.LoadManifest(args.Output)
	if err != nil {
		return err
	}

	slog.Info("viewing saved mutation space",
		"dir", args.Output,
		"degree", manifest.Degree,
		"total", manifest.Total,
		"chunks", len(manifest.Chunks),
	)

	mutations := make([]string, 0, manifest.Total)

	for _, chunk := range manifest.Chunks {
		loaded, err := w.LoadMutations(m.Path(chunk))
		if err != nil {
			return err
		}

		for _, mut := range loaded {
			mutations = append(mutations, mut.String())
		}
	}

	return w.DisplayMutations(ctx, mutations)
}

func (w *workflow) buildSpace(args SourceArgs) (*MutationSpace, error) {
	explicit := len(args.Positions) > 0
	external := args.Table != "" || args.Structure != ""

	switch {
	case explicit && external:
		return nil, fmt.Errorf("explicit positions and a compatibility table are mutually exclusive")
	case explicit:
		return NewMutationSpaceFromTable(args.Positions), nil
	case args.Table != "" && args.Structure != "":
		return w.FromCompatibilityTable(args.Table, args.Structure, args.ModelID)
	default:
		return nil, fmt.Errorf("either positions or both a table and a structure are required")
	}
}

// summarize condenses a space into display statistics.
func summarize(space *MutationSpace) controller.SpaceSummary {
	slots := space.Slots()
	positions := make([]controller.PositionStat, len(slots))

	for i, slot := range slots {
		key := "-"
		if len(slot) > 0 {
			// Every entry of a slot shares the position prefix.
			key = slot[0][:len(slot[0])-1]
		}

		positions[i] = controller.PositionStat{Key: key, Options: len(slot)}
	}

	degrees := make([]controller.DegreeStat, 0, space.NumPositions())
	for d := 1; d <= space.NumPositions(); d++ {
		degrees = append(degrees, controller.DegreeStat{Degree: d, Size: space.Size(d, false)})
	}

	return controller.SpaceSummary{
		Positions: positions,
		Degrees:   degrees,
		Total:     space.TotalSize(),
	}
}

func chunkNames(paths []m.Path) []string {
	names := make([]string, len(paths))
	for i, p := range paths {
		names[i] = string(p)
	}

	return names
}
