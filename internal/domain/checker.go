package domain

import (
	"errors"
	"fmt"

	"mutspace.dev/pkg/mutspace/internal/adapter"
	m "mutspace.dev/pkg/mutspace/internal/model"
)

// ErrInconsistentMutation is returned when the residue observed in a
// structure matches neither the declared wild type nor the declared mutant.
var ErrInconsistentMutation = errors.New("mutation is neither forward nor reverse")

// Checker validates mutations and residue identities against structure files.
type Checker interface {
	// IsMutationReversed reports whether the mutation is reversed with
	// respect to the structure: false when the observed residue equals the
	// declared wild type, true when it equals the declared mutant, and
	// ErrInconsistentMutation otherwise. Only the first point mutation is
	// checked; multi-point mutations are not verified in full.
	IsMutationReversed(mut m.Mutation, structurePath m.Path, modelID int) (bool, error)

	// IsResidueWildType reports whether the structure's residue at the given
	// chain and position equals the expected one-letter code.
	IsResidueWildType(structurePath m.Path, chain byte, position int, expected byte, modelID int) (bool, error)
}

type checker struct {
	adapter.StructureAdapter
}

// NewChecker creates a Checker backed by the given structure adapter.
func NewChecker(structures adapter.StructureAdapter) Checker {
	return &checker{StructureAdapter: structures}
}

func (c *checker) IsMutationReversed(mut m.Mutation, structurePath m.Path, modelID int) (bool, error) {
	points := mut.Points()
	if len(points) == 0 {
		return false, fmt.Errorf("empty mutation")
	}

	point, err := m.ParsePoint(points[0])
	if err != nil {
		return false, err
	}

	mdl, err := c.LoadStructure(structurePath, modelID)
	if err != nil {
		return false, err
	}

	observed, err := mdl.ResidueCode(point.Chain, point.Position)
	if err != nil {
		return false, err
	}

	switch observed {
	case point.WildType:
		return false, nil
	case point.Mutant:
		return true, nil
	default:
		return false, fmt.Errorf("%w: %s (observed %c)", ErrInconsistentMutation, points[0], observed)
	}
}

func (c *checker) IsResidueWildType(structurePath m.Path, chain byte, position int, expected byte, modelID int) (bool, error) {
	mdl, err := c.LoadStructure(structurePath, modelID)
	if err != nil {
		return false, err
	}

	observed, err := mdl.ResidueCode(chain, position)
	if err != nil {
		return false, err
	}

	return observed == expected, nil
}
