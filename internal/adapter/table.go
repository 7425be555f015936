package adapter

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

// TableAdapter reads residue-compatibility tables: plain text, one record
// per line, two whitespace-separated tokens. The first token is the
// position-and-chain coordinate (digits followed by a single chain
// character, e.g. "17C"), the second the candidate residue codes observed
// at that position.
type TableAdapter interface {
	ReadTable(path m.Path) ([]m.CompatibilityRow, error)
}

// FileTableAdapter is the file-backed TableAdapter implementation.
type FileTableAdapter struct{}

// NewFileTableAdapter constructs a FileTableAdapter.
func NewFileTableAdapter() *FileTableAdapter {
	return &FileTableAdapter{}
}

// ReadTable parses the table file. Rows that do not have exactly two tokens
// or whose coordinate token is malformed fail the whole read; blank lines
// are ignored.
func (a *FileTableAdapter) ReadTable(path m.Path) ([]m.CompatibilityRow, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}

	defer func() { _ = f.Close() }()

	rows := []m.CompatibilityRow{}
	lineNum := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lineNum++

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, err := parseTableRow(line)
		if err != nil {
			return nil, fmt.Errorf("parse %s line %d: %w", path, lineNum, err)
		}

		rows = append(rows, row)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read table %s: %w", path, err)
	}

	return rows, nil
}

func parseTableRow(line string) (m.CompatibilityRow, error) {
	tokens := strings.Fields(line)
	if len(tokens) != 2 {
		return m.CompatibilityRow{}, fmt.Errorf("expected 2 tokens, got %d", len(tokens))
	}

	coord := tokens[0]
	if len(coord) < 2 {
		return m.CompatibilityRow{}, fmt.Errorf("coordinate %q too short", coord)
	}

	position, err := strconv.Atoi(coord[:len(coord)-1])
	if err != nil {
		return m.CompatibilityRow{}, fmt.Errorf("coordinate %q has invalid position: %w", coord, err)
	}

	return m.CompatibilityRow{
		Position:   position,
		Chain:      coord[len(coord)-1],
		Candidates: tokens[1],
	}, nil
}
