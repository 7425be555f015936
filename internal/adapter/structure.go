// Package adapter contains infrastructure adapters: structure files,
// compatibility tables and mutation-list storage.
package adapter

import (
	"errors"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

// ErrResidueNotFound is returned when a chain/position coordinate is absent
// from a loaded structure model.
var ErrResidueNotFound = errors.New("residue not found in structure")

// StructureModel exposes residue identities of one model of a loaded
// structure. Implementations are read-only and safe for concurrent use.
type StructureModel interface {
	// ResidueCode returns the one-letter residue code at the given chain and
	// position, or ErrResidueNotFound.
	ResidueCode(chain byte, position int) (byte, error)
}

// StructureAdapter abstracts structural-file parsing so the domain layer can
// look up residue identities without knowing the file format.
type StructureAdapter interface {
	// LoadStructure parses a structure file and returns the model with the
	// given zero-based index. Parse failures and out-of-range model ids are
	// reported as errors.
	LoadStructure(path m.Path, modelID int) (StructureModel, error)
}
