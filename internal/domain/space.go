// Package domain contains the mutation-space enumeration logic and the
// consistency checks built on top of the structure-lookup adapter.
package domain

import (
	"errors"
	"fmt"
	"strings"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

// ErrNotImplemented is returned when enumeration is asked to truncate its
// output; partial generation is deliberately unsupported.
var ErrNotImplemented = errors.New("truncated enumeration is not implemented")

// MutationSpace is the combinatorial universe of substitutions across a set
// of residue positions. Each slot holds the fully-formed point-mutation
// strings available at one position; an empty slot contributes only the
// wild-type option. Instances are immutable after construction.
type MutationSpace struct {
	slots [][]string
}

// NewMutationSpace builds a space from explicit slots. Slot order is
// preserved and determines enumeration order.
func NewMutationSpace(slots [][]string) *MutationSpace {
	copied := make([][]string, len(slots))
	for i, slot := range slots {
		copied[i] = make([]string, len(slot))
		copy(copied[i], slot)
	}

	return &MutationSpace{slots: copied}
}

// NewMutationSpaceFromTable expands an ordered position table into slots:
// each candidate code c under key k becomes the point-mutation string k+c.
//
// Example: {"YC17": "AG", "TA20": "A"} expands to
// [["YC17A", "YC17G"], ["TA20A"]].
func NewMutationSpaceFromTable(table m.PositionTable) *MutationSpace {
	slots := make([][]string, 0, len(table))

	for _, entry := range table {
		slot := make([]string, 0, len(entry.Candidates))
		for i := 0; i < len(entry.Candidates); i++ {
			slot = append(slot, entry.Key+string(entry.Candidates[i]))
		}

		slots = append(slots, slot)
	}

	return &MutationSpace{slots: slots}
}

// NumPositions returns the number of position slots.
func (s *MutationSpace) NumPositions() int {
	return len(s.slots)
}

// Slots returns a copy of the backing slots.
func (s *MutationSpace) Slots() [][]string {
	copied := make([][]string, len(s.slots))
	for i, slot := range s.slots {
		copied[i] = make([]string, len(slot))
		copy(copied[i], slot)
	}

	return copied
}

// Size counts the mutation combinations of exactly the given degree: the sum
// over all degree-sized subsets of positions of the product of per-slot
// option counts. Degree 0 counts only the wild type, and only when
// includeWildType is set. The result equals len(Construct(degree)) when
// includeWildType is false.
func (s *MutationSpace) Size(degree int, includeWildType bool) int {
	total := 0
	if includeWildType && degree == 0 {
		total = 1
	}

	if degree <= 0 {
		return total
	}

	forEachCombination(len(s.slots), degree, func(comb []int) {
		product := 1
		for _, i := range comb {
			product *= len(s.slots[i])
		}

		total += product
	})

	return total
}

// TotalSize counts the whole space: the sum of Size(d) for every degree from
// 1 to the number of positions. The wild type is never counted here.
func (s *MutationSpace) TotalSize() int {
	total := 0
	for d := 1; d <= len(s.slots); d++ {
		total += s.Size(d, false)
	}

	return total
}

// ConstructAll enumerates the full space: every combination of substitutions
// across all positions with at least one position mutated. Within each
// combination the rightmost slot varies fastest; the pure wild-type outcome
// is removed from the result.
func (s *MutationSpace) ConstructAll() []string {
	return generateFullSpace(s.slots, true)
}

// Construct enumerates every mutation of exactly the given degree. Degree 0
// yields an empty sequence (the wild type is never emitted). Otherwise every
// degree-sized combination of slots is expanded in ascending index-tuple
// order, and within each combination the full product over the chosen slots
// is generated.
func (s *MutationSpace) Construct(degree int) []string {
	if degree <= 0 {
		return []string{}
	}

	out := []string{}

	forEachCombination(len(s.slots), degree, func(comb []int) {
		chosen := make([][]string, len(comb))
		for i, slotIndex := range comb {
			chosen[i] = s.slots[slotIndex]
		}

		out = append(out, generateFullSpace(chosen, false)...)
	})

	return out
}

// EnumerateArgs selects what Enumerate generates. A nil Degree means the
// full space. Limit is reserved for output truncation and must be zero.
type EnumerateArgs struct {
	Degree *int
	Limit  int
}

// Enumerate dispatches between the full-space and degree-specific
// generators. A positive Limit fails with ErrNotImplemented.
func (s *MutationSpace) Enumerate(args EnumerateArgs) ([]string, error) {
	if args.Limit > 0 {
		return nil, fmt.Errorf("%w: limit %d requested", ErrNotImplemented, args.Limit)
	}

	if args.Degree == nil {
		return s.ConstructAll(), nil
	}

	return s.Construct(*args.Degree), nil
}

// generateFullSpace takes the outer product across the given slots and joins
// each product tuple into one comma-separated mutation string.
//
// With suppressIdentity set, every slot additionally offers a "leave wild
// type" empty option; empty entries are dropped from each tuple and the one
// resulting pure wild-type (empty) string is removed from the output. Without
// it the product runs over the slots as-is, so every result carries exactly
// one substitution per slot.
func generateFullSpace(slots [][]string, suppressIdentity bool) []string {
	work := slots
	if suppressIdentity {
		work = make([][]string, len(slots))
		for i, slot := range slots {
			withWT := make([]string, len(slot), len(slot)+1)
			copy(withWT, slot)
			work[i] = append(withWT, "")
		}
	}

	out := []string{}

	forEachProduct(work, func(tuple []string) {
		parts := make([]string, 0, len(tuple))
		for _, entry := range tuple {
			if entry != "" {
				parts = append(parts, entry)
			}
		}

		out = append(out, strings.Join(parts, ","))
	})

	if suppressIdentity {
		out = removeFirst(out, "")
	}

	return out
}

// forEachProduct iterates the cartesian product of the slots in standard
// order: the last slot varies fastest. The tuple passed to fn is reused
// between calls. An empty slot makes the product empty; zero slots yield the
// single empty tuple.
func forEachProduct(slots [][]string, fn func(tuple []string)) {
	for _, slot := range slots {
		if len(slot) == 0 {
			return
		}
	}

	indices := make([]int, len(slots))
	tuple := make([]string, len(slots))

	for {
		for i, idx := range indices {
			tuple[i] = slots[i][idx]
		}

		fn(tuple)

		pos := len(indices) - 1
		for ; pos >= 0; pos-- {
			indices[pos]++
			if indices[pos] < len(slots[pos]) {
				break
			}

			indices[pos] = 0
		}

		if pos < 0 {
			return
		}
	}
}

// forEachCombination visits every k-sized combination of {0..n-1} in
// lexicographic order. The slice passed to fn is reused between calls.
func forEachCombination(n, k int, fn func(comb []int)) {
	if k > n || k <= 0 {
		return
	}

	comb := make([]int, k)
	for i := range comb {
		comb[i] = i
	}

	for {
		fn(comb)

		pos := k - 1
		for ; pos >= 0; pos-- {
			if comb[pos] != pos+n-k {
				break
			}
		}

		if pos < 0 {
			return
		}

		comb[pos]++
		for i := pos + 1; i < k; i++ {
			comb[i] = comb[i-1] + 1
		}
	}
}

func removeFirst(entries []string, target string) []string {
	for i, entry := range entries {
		if entry == target {
			return append(entries[:i], entries[i+1:]...)
		}
	}

	return entries
}
