package adapter

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strconv"
	"strings"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

// aminoThreeToOne maps three-letter amino acid names to their one-letter
// codes, including the rarer SEC/PYL and the ambiguity codes.
var aminoThreeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O',
	"UNK": 'X', "ASX": 'X', "GLX": 'X',
}

// PDBAdapter loads residue identities from PDB coordinate files. When Strict
// is set, malformed or unrecognised ATOM records fail the parse; otherwise
// they are skipped, mirroring a permissive structural parser.
type PDBAdapter struct {
	strict bool
}

// NewPDBAdapter constructs a PDBAdapter. strict selects hard failures over
// silent skipping for malformed records.
func NewPDBAdapter(strict bool) *PDBAdapter {
	return &PDBAdapter{strict: strict}
}

type residueKey struct {
	chain    byte
	position int
}

// pdbModel holds the residue identities of a single model.
type pdbModel struct {
	residues map[residueKey]byte
}

// ResidueCode returns the one-letter residue code at the given coordinate.
func (p *pdbModel) ResidueCode(chain byte, position int) (byte, error) {
	code, ok := p.residues[residueKey{chain: chain, position: position}]
	if !ok {
		return 0, fmt.Errorf("%w: chain %c position %d", ErrResidueNotFound, chain, position)
	}

	return code, nil
}

// LoadStructure parses a PDB file and returns the model with the given
// zero-based index. Files without MODEL records expose a single model 0.
// Paths ending in ".gz" are decompressed on the fly.
func (a *PDBAdapter) LoadStructure(filePath m.Path, modelID int) (StructureModel, error) {
	f, err := os.Open(string(filePath))
	if err != nil {
		return nil, fmt.Errorf("open structure: %w", err)
	}

	defer func() { _ = f.Close() }()

	var reader io.Reader = f
	if path.Ext(string(filePath)) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("open structure: %w", err)
		}

		defer func() { _ = gz.Close() }()

		reader = gz
	}

	models, err := a.parseModels(reader, string(filePath))
	if err != nil {
		return nil, err
	}

	if modelID < 0 || modelID >= len(models) {
		return nil, fmt.Errorf("model %d not found in %s (%d model(s))", modelID, filePath, len(models))
	}

	return models[modelID], nil
}

// parseModels walks the record lines and collects residue identities per
// model. Only the record name, residue name, chain id and residue sequence
// number columns of ATOM records are consulted.
func (a *PDBAdapter) parseModels(reader io.Reader, name string) ([]*pdbModel, error) {
	models := []*pdbModel{}
	current := (*pdbModel)(nil)
	sawModelRecord := false

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) < 6 {
			continue
		}

		switch strings.TrimSpace(line[0:6]) {
		case "MODEL":
			sawModelRecord = true
			current = &pdbModel{residues: map[residueKey]byte{}}
			models = append(models, current)
		case "ENDMDL":
			current = nil
		case "ATOM":
			if current == nil {
				if sawModelRecord {
					// ATOM records between ENDMDL and the next MODEL
					// belong to no model.
					continue
				}

				current = &pdbModel{residues: map[residueKey]byte{}}
				models = append(models, current)
			}

			if err := a.parseAtom(current, line, name); err != nil {
				return nil, err
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read structure %s: %w", name, err)
	}

	if len(models) == 0 {
		return nil, fmt.Errorf("%s does not look like a PDB file: no ATOM records", name)
	}

	return models, nil
}

// parseAtom extracts chain (column 22), residue name (columns 18-20) and
// residue sequence number (columns 23-26) from one ATOM record.
func (a *PDBAdapter) parseAtom(mdl *pdbModel, line, name string) error {
	if len(line) < 26 {
		return a.skipOrFail(name, fmt.Errorf("short ATOM record %q", line))
	}

	resName := strings.TrimSpace(line[17:20])
	code, ok := aminoThreeToOne[resName]
	if !ok {
		return a.skipOrFail(name, fmt.Errorf("unknown residue %q in ATOM record", resName))
	}

	position, err := strconv.Atoi(strings.TrimSpace(line[22:26]))
	if err != nil {
		return a.skipOrFail(name, fmt.Errorf("invalid residue number in ATOM record %q: %w", line, err))
	}

	mdl.residues[residueKey{chain: line[21], position: position}] = code

	return nil
}

func (a *PDBAdapter) skipOrFail(name string, err error) error {
	if a.strict {
		return fmt.Errorf("parse %s: %w", name, err)
	}

	slog.Debug("skipping malformed PDB record", "file", name, "reason", err)

	return nil
}
