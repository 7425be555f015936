package model

import (
	"fmt"
	"sort"
)

// Path represents a file system path.
type Path string

// PositionChoices describes the substitutions offered at one residue
// position. Key is the position prefix in <wild-type><chain><position>
// form (e.g. "YC17"); Candidates holds the mutant one-letter codes, one
// per byte. An empty Candidates string means the position contributes
// only the wild-type option.
type PositionChoices struct {
	Key        string
	Candidates string
}

// PositionTable is an ordered set of position choices. Order is
// significant: it fixes slot order and therefore enumeration order.
type PositionTable []PositionChoices

// PositionTableFromMap converts an unordered mapping into a PositionTable.
// Keys are sorted so the resulting slot order is deterministic.
func PositionTableFromMap(choices map[string]string) PositionTable {
	keys := make([]string, 0, len(choices))
	for key := range choices {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	table := make(PositionTable, 0, len(keys))
	for _, key := range keys {
		table = append(table, PositionChoices{Key: key, Candidates: choices[key]})
	}

	return table
}

// CompatibilityRow is one parsed record of an external residue-compatibility
// table: the chain/position coordinate plus the observed candidate residue
// codes (which are expected to include the wild type).
type CompatibilityRow struct {
	Position   int
	Chain      byte
	Candidates string
}

// SpaceManifest summarises a persisted enumeration: where it came from, how
// large it is and which chunk files hold the mutation strings.
type SpaceManifest struct {
	Structure string   `yaml:"structure,omitempty"`
	Table     string   `yaml:"table,omitempty"`
	Positions int      `yaml:"positions"`
	Degree    string   `yaml:"degree"`
	Total     int      `yaml:"total"`
	ChunkSize int      `yaml:"chunk_size"`
	Chunks    []string `yaml:"chunks"`
}

// DegreeLabel renders the degree selector for manifests and display: "all"
// when degree is unset, the number otherwise.
func DegreeLabel(degree *int) string {
	if degree == nil {
		return "all"
	}

	return fmt.Sprintf("%d", *degree)
}
