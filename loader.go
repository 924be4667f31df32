package holdings

import (
	"fmt"
	"os"
)

// LoadSnapshot opens and decodes the snapshot file at path.
func LoadSnapshot(path string, paths SnapshotPaths) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open snapshot file %q: %w", path, err)
	}
	defer f.Close()

	s, err := DecodeSnapshot(f, paths)
	if err != nil {
		return nil, fmt.Errorf("could not decode snapshot file %q: %w", path, err)
	}
	return s, nil
}

// LoadColorTable opens and decodes the color table file at path.
// An empty path returns DefaultColors.
func LoadColorTable(path string) (ColorTable, error) {
	if path == "" {
		return DefaultColors, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return ColorTable{}, fmt.Errorf("could not open color table %q: %w", path, err)
	}
	defer f.Close()
	return DecodeColorTable(f)
}
