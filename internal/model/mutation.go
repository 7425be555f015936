// Package model defines the data structures for protein mutation modelling.
package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrChainNotMapped is returned by RenameChains when a mutation references a
// chain id that has no entry in the rename mapping.
var ErrChainNotMapped = errors.New("chain id not present in rename mapping")

// Point is one decomposed point mutation: wild-type residue, chain id,
// residue position and mutant residue. The canonical string form is
// <wild-type><chain><position><mutant>, e.g. "YC17T" for chain C,
// position 17, tyrosine mutated to threonine.
type Point struct {
	WildType byte
	Chain    byte
	Position int
	Mutant   byte
}

// String renders the canonical point-mutation notation.
func (p Point) String() string {
	return fmt.Sprintf("%c%c%d%c", p.WildType, p.Chain, p.Position, p.Mutant)
}

// ParsePoint decomposes a point-mutation string into its four fields.
// An empty input yields (nil, nil). Residue-code legality is not checked;
// only the structural shape (one byte, one byte, integer, one byte) is.
func ParsePoint(s string) (*Point, error) {
	if s == "" {
		return nil, nil
	}

	if len(s) < 4 {
		return nil, fmt.Errorf("point mutation %q too short", s)
	}

	pos, err := strconv.Atoi(s[2 : len(s)-1])
	if err != nil {
		return nil, fmt.Errorf("point mutation %q has invalid position: %w", s, err)
	}

	return &Point{
		WildType: s[0],
		Chain:    s[1],
		Position: pos,
		Mutant:   s[len(s)-1],
	}, nil
}

// Mutation is an immutable single or multi-point mutation, stored as an
// ordered sequence of point-mutation strings. The canonical string form
// joins the points with commas, e.g. "YC17T,TA20A".
type Mutation struct {
	points []string
}

// NewMutation builds a Mutation from explicit point-mutation strings,
// preserving their order.
func NewMutation(points ...string) Mutation {
	copied := make([]string, len(points))
	copy(copied, points)

	return Mutation{points: copied}
}

// NewMutationFromString parses the comma-joined notation. All whitespace is
// stripped before splitting. The empty string yields the empty mutation.
func NewMutationFromString(s string) Mutation {
	cleaned := strings.Join(strings.Fields(s), "")
	if cleaned == "" {
		return Mutation{}
	}

	return Mutation{points: strings.Split(cleaned, ",")}
}

// Points returns the point-mutation strings in stored order.
func (m Mutation) Points() []string {
	copied := make([]string, len(m.points))
	copy(copied, m.points)

	return copied
}

// IsEmpty reports whether the mutation carries no points.
func (m Mutation) IsEmpty() bool {
	return len(m.points) == 0
}

// String returns the comma-joined canonical form.
func (m Mutation) String() string {
	return strings.Join(m.points, ",")
}

// Equal reports whether both mutations hold the same points in the same order.
func (m Mutation) Equal(other Mutation) bool {
	if len(m.points) != len(other.points) {
		return false
	}

	for i, p := range m.points {
		if other.points[i] != p {
			return false
		}
	}

	return true
}

// Revert swaps wild-type and mutant residues of every point, keeping chain
// and position: "YC17T" becomes "TC17Y". Revert is its own inverse.
func (m Mutation) Revert() Mutation {
	reverted := make([]string, len(m.points))
	for i, p := range m.points {
		reverted[i] = revertPoint(p)
	}

	return Mutation{points: reverted}
}

// RenameChains replaces the chain id of every point using the supplied
// mapping, e.g. {'C': 'A'} turns "YC17T" into "YA17T". A chain id without a
// mapping entry fails with ErrChainNotMapped.
func (m Mutation) RenameChains(mapping map[byte]byte) (Mutation, error) {
	renamed := make([]string, len(m.points))

	for i, p := range m.points {
		r, err := renamePoint(p, mapping)
		if err != nil {
			return Mutation{}, err
		}

		renamed[i] = r
	}

	return Mutation{points: renamed}, nil
}

// revertPoint swaps the first and last byte of a point-mutation string.
// Degenerate tokens shorter than two bytes are returned unchanged.
func revertPoint(p string) string {
	if len(p) < 2 {
		return p
	}

	return string(p[len(p)-1]) + p[1:len(p)-1] + string(p[0])
}

func renamePoint(p string, mapping map[byte]byte) (string, error) {
	if len(p) < 2 {
		return "", fmt.Errorf("point mutation %q has no chain id", p)
	}

	renamed, ok := mapping[p[1]]
	if !ok {
		return "", fmt.Errorf("%w: %c in %q", ErrChainNotMapped, p[1], p)
	}

	return p[:1] + string(renamed) + p[2:], nil
}
