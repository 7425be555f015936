package adapter

import (
	"os"
	"path/filepath"

	m "mutspace.dev/pkg/mutspace/internal/model"
)

func testPath(name string) m.Path {
	return m.Path(filepath.Join("testdata", name))
}

func mPath(p string) m.Path {
	return m.Path(p)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}
