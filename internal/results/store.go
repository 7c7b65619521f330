package results

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"agrisight-backend/internal/shared/util"
)

// Store is a filesystem-backed results directory shared by the analysis
// engine and the demo generator. Writes by fixed map name are
// last-writer-wins; callers list images only after finishing their own set.
type Store struct {
	baseDir string
}

// New creates a store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Dir returns the directory the external engine writes into.
func (s *Store) Dir() string {
	return s.baseDir
}

// SavePNG encodes img and writes it under name, overwriting any prior file.
func (s *Store) SavePNG(name string, img image.Image) error {
	clean, err := util.SanitizeFileName(name)
	if err != nil {
		return fmt.Errorf("map name: %w", err)
	}
	if !strings.HasSuffix(clean, ".png") {
		clean += ".png"
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(s.baseDir, clean)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Open opens a stored raster for reading.
func (s *Store) Open(name string) (io.ReadCloser, error) {
	clean := filepath.Clean(name)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) || strings.ContainsAny(clean, `/\`) {
		return nil, fmt.Errorf("invalid result name")
	}

	f, err := os.Open(filepath.Join(s.baseDir, clean))
	if err != nil {
		return nil, err
	}
	return f, nil
}

// ListPNG returns the names of all PNG files currently present, sorted.
func (s *Store) ListPNG() ([]string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read results dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(strings.ToLower(e.Name()), ".png") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
