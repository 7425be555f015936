package adapter

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	m "mutspace.dev/pkg/mutspace/internal/model"
	"mutspace.dev/pkg/mutspace/pkg"
)

// manifestFileName is written next to the chunk files.
const manifestFileName = "manifest.yaml"

// MutationStore persists enumerated mutation lists as chunked plain-text
// files (one mutation string per line) plus a YAML manifest, and loads
// mutation lists back.
type MutationStore interface {
	SaveMutations(dir m.Path, mutations []string, chunkSize int) ([]m.Path, error)
	SaveManifest(dir m.Path, manifest m.SpaceManifest) error
	LoadManifest(dir m.Path) (m.SpaceManifest, error)
	LoadMutations(path m.Path) ([]m.Mutation, error)
}

// FileMutationStore is the disk-backed MutationStore implementation.
type FileMutationStore struct{}

// NewFileMutationStore constructs a FileMutationStore.
func NewFileMutationStore() *FileMutationStore {
	return &FileMutationStore{}
}

// SaveMutations writes the mutation strings under dir, chunkSize lines per
// file. A chunkSize of zero or less writes a single chunk. Chunk files are
// written concurrently; any failure aborts the save.
func (s *FileMutationStore) SaveMutations(dir m.Path, mutations []string, chunkSize int) ([]m.Path, error) {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	if chunkSize <= 0 {
		chunkSize = len(mutations)
		if chunkSize == 0 {
			chunkSize = 1
		}
	}

	chunks := pkg.Chunk(mutations, chunkSize)
	paths := make([]m.Path, len(chunks))

	var group errgroup.Group

	for i, chunk := range chunks {
		paths[i] = m.Path(filepath.Join(string(dir), fmt.Sprintf("mutations_%04d.txt", i)))

		group.Go(func() error {
			return writeChunk(string(paths[i]), chunk)
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	slog.Info("saved mutation list", "dir", dir, "mutations", len(mutations), "chunks", len(chunks))

	return paths, nil
}

func writeChunk(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chunk: %w", err)
	}

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			_ = f.Close()
			return fmt.Errorf("write chunk %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("flush chunk %s: %w", path, err)
	}

	return f.Close()
}

// SaveManifest writes the enumeration summary as YAML under dir.
func (s *FileMutationStore) SaveManifest(dir m.Path, manifest m.SpaceManifest) error {
	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	target := filepath.Join(string(dir), manifestFileName)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}

	return nil
}

// LoadManifest reads the enumeration summary back from dir.
func (s *FileMutationStore) LoadManifest(dir m.Path) (m.SpaceManifest, error) {
	data, err := os.ReadFile(filepath.Join(string(dir), manifestFileName))
	if err != nil {
		return m.SpaceManifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var manifest m.SpaceManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.SpaceManifest{}, fmt.Errorf("decode manifest: %w", err)
	}

	return manifest, nil
}

// LoadMutations reads one chunk file back into Mutation values, one per
// non-empty line.
func (s *FileMutationStore) LoadMutations(path m.Path) ([]m.Mutation, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open mutation list: %w", err)
	}

	defer func() { _ = f.Close() }()

	mutations := []m.Mutation{}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		mutations = append(mutations, m.NewMutationFromString(line))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read mutation list %s: %w", path, err)
	}

	return mutations, nil
}
