package adapter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

func TestFileMutationStore_SaveMutations_Chunked(t *testing.T) {
	dir := m.Path(filepath.Join(t.TempDir(), "out"))
	mutations := []string{"YC17A", "YC17G", "TA20A", "YC17A,TA20A", "YC17G,TA20A", "GB5W", "GB5F"}

	paths, err := NewFileMutationStore().SaveMutations(dir, mutations, 3)
	require.NoError(t, err)

	require.Len(t, paths, 3)
	assert.Equal(t, m.Path(filepath.Join(string(dir), "mutations_0000.txt")), paths[0])
	assert.Equal(t, m.Path(filepath.Join(string(dir), "mutations_0002.txt")), paths[2])

	data, err := os.ReadFile(string(paths[0]))
	require.NoError(t, err)
	assert.Equal(t, "YC17A\nYC17G\nTA20A\n", string(data))

	data, err = os.ReadFile(string(paths[2]))
	require.NoError(t, err)
	assert.Equal(t, "GB5F\n", string(data))
}

func TestFileMutationStore_SaveMutations_SingleChunkWhenSizeUnset(t *testing.T) {
	dir := m.Path(t.TempDir())

	paths, err := NewFileMutationStore().SaveMutations(dir, []string{"YC17A", "TA20A"}, 0)
	require.NoError(t, err)
	assert.Len(t, paths, 1)
}

func TestFileMutationStore_LoadMutations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mutations_0000.txt")
	require.NoError(t, writeFile(path, "YC17A\n\nYC17G,TA20A\n"))

	mutations, err := NewFileMutationStore().LoadMutations(m.Path(path))
	require.NoError(t, err)

	require.Len(t, mutations, 2)
	assert.Equal(t, "YC17A", mutations[0].String())
	assert.Equal(t, "YC17G,TA20A", mutations[1].String())
	assert.Equal(t, []string{"YC17G", "TA20A"}, mutations[1].Points())
}

func TestFileMutationStore_SaveManifest(t *testing.T) {
	dir := m.Path(t.TempDir())

	manifest := m.SpaceManifest{
		Structure: "mini.pdb",
		Table:     "compat.txt",
		Positions: 2,
		Degree:    "2",
		Total:     2,
		ChunkSize: 3,
		Chunks:    []string{"mutations_0000.txt"},
	}
	require.NoError(t, NewFileMutationStore().SaveManifest(dir, manifest))

	data, err := os.ReadFile(filepath.Join(string(dir), manifestFileName))
	require.NoError(t, err)

	var loaded m.SpaceManifest
	require.NoError(t, yaml.Unmarshal(data, &loaded))
	assert.Equal(t, manifest, loaded)
	assert.True(t, strings.Contains(string(data), "degree: \"2\""))
}

func TestFileMutationStore_LoadManifest(t *testing.T) {
	dir := m.Path(t.TempDir())
	store := NewFileMutationStore()

	manifest := m.SpaceManifest{
		Positions: 2,
		Degree:    "all",
		Total:     5,
		ChunkSize: 2,
		Chunks:    []string{"mutations_0000.txt", "mutations_0001.txt"},
	}
	require.NoError(t, store.SaveManifest(dir, manifest))

	loaded, err := store.LoadManifest(dir)
	require.NoError(t, err)
	assert.Equal(t, manifest, loaded)
}

func TestFileMutationStore_LoadManifest_Missing(t *testing.T) {
	_, err := NewFileMutationStore().LoadManifest(m.Path(t.TempDir()))
	assert.Error(t, err)
}

func TestFileMutationStore_SaveAndLoadRoundTrip(t *testing.T) {
	dir := m.Path(t.TempDir())
	store := NewFileMutationStore()

	mutations := []string{"YC17A,TA20A", "YC17A", "YC17G,TA20A", "YC17G", "TA20A"}

	paths, err := store.SaveMutations(dir, mutations, 2)
	require.NoError(t, err)
	require.Len(t, paths, 3)

	loaded := []string{}
	for _, p := range paths {
		chunk, err := store.LoadMutations(p)
		require.NoError(t, err)

		for _, mut := range chunk {
			loaded = append(loaded, mut.String())
		}
	}

	assert.Equal(t, mutations, loaded)
}
