package domain

import (
	"errors"
	"fmt"
	"strings"

	"mutspace.dev/pkg/mutspace/internal/adapter"
	m "mutspace.dev/pkg/mutspace/internal/model"
)

// ErrMissingWildType is returned when a compatibility-table row does not
// contain the wild-type residue observed in the structure.
var ErrMissingWildType = errors.New("candidate residues do not contain the wild type")

// SpaceBuilder derives mutation spaces from external inputs.
type SpaceBuilder interface {
	// FromCompatibilityTable loads the structure, reads the table and builds
	// a MutationSpace. For every row the structurally observed wild type is
	// stripped from the candidate codes; a row whose candidates do not
	// include it fails with ErrMissingWildType.
	FromCompatibilityTable(tablePath, structurePath m.Path, modelID int) (*MutationSpace, error)
}

type spaceBuilder struct {
	adapter.StructureAdapter
	adapter.TableAdapter
}

// NewSpaceBuilder creates a SpaceBuilder backed by the given adapters.
func NewSpaceBuilder(structures adapter.StructureAdapter, tables adapter.TableAdapter) SpaceBuilder {
	return &spaceBuilder{
		StructureAdapter: structures,
		TableAdapter:     tables,
	}
}

func (b *spaceBuilder) FromCompatibilityTable(tablePath, structurePath m.Path, modelID int) (*MutationSpace, error) {
	if b.StructureAdapter == nil || b.TableAdapter == nil {
		return nil, fmt.Errorf("missing adapters")
	}

	mdl, err := b.LoadStructure(structurePath, modelID)
	if err != nil {
		return nil, err
	}

	rows, err := b.ReadTable(tablePath)
	if err != nil {
		return nil, err
	}

	table := make(m.PositionTable, 0, len(rows))

	for _, row := range rows {
		wt, err := mdl.ResidueCode(row.Chain, row.Position)
		if err != nil {
			return nil, err
		}

		stripped := strings.ReplaceAll(row.Candidates, string(wt), "")
		if len(stripped) == len(row.Candidates) {
			return nil, fmt.Errorf("%w: %c at %d%c", ErrMissingWildType, wt, row.Position, row.Chain)
		}

		table = append(table, m.PositionChoices{
			Key:        fmt.Sprintf("%c%c%d", wt, row.Chain, row.Position),
			Candidates: stripped,
		})
	}

	return NewMutationSpaceFromTable(table), nil
}
