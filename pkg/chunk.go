// Package pkg provides small shared utilities for mutspace.
package pkg

// Chunk splits items into consecutive slices of at most size elements. The
// returned slices alias the input. A nil or empty input yields no chunks;
// size must be positive.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return nil
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)

	for start := 0; start < len(items); start += size {
		end := start + size
		if end > len(items) {
			end = len(items)
		}

		chunks = append(chunks, items[start:end])
	}

	return chunks
}
