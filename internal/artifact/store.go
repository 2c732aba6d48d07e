// Package artifact persists rendered charts on disk and expires them.
package artifact

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	filePrefix = "celestial_chart_"
	fileExt    = ".png"
	tempPrefix = "." + filePrefix
	tempExt    = ".tmp"
)

var (
	// ErrInvalidName is returned for names that are not plain chart file names.
	ErrInvalidName = errors.New("invalid artifact name")
	// ErrNotFound is returned when no artifact has the given name.
	ErrNotFound = errors.New("artifact not found")
)

// Store writes chart files into a single directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates dir if needed.
func NewStore(dir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create artifact dir %s: %w", dir, err)
	}
	return &Store{
		dir:    dir,
		logger: logger.With("component", "artifact-store"),
	}, nil
}

// Dir returns the directory holding the artifacts.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes data under a fresh unique name and returns that name. The file
// is written to a hidden temp file and renamed, so readers never see a
// partial chart.
func (s *Store) Save(data []byte) (string, error) {
	name := filePrefix + uuid.NewString() + fileExt

	tmp, err := os.CreateTemp(s.dir, tempPrefix+"*"+tempExt)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			s.logger.Warn("failed to remove temp file", "path", tmpName, "error", rmErr)
		}
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		cleanup()
		return "", fmt.Errorf("failed to write chart: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to close chart: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to chmod chart: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(s.dir, name)); err != nil {
		cleanup()
		return "", fmt.Errorf("failed to publish chart: %w", err)
	}

	s.logger.Debug("chart saved", "name", name, "bytes", len(data))
	return name, nil
}

// Path returns the on-disk path of an existing artifact.
func (s *Store) Path(name string) (string, error) {
	if !ValidName(name) {
		return "", ErrInvalidName
	}
	path := filepath.Join(s.dir, name)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if !info.Mode().IsRegular() {
		return "", ErrNotFound
	}
	return path, nil
}

// ValidName reports whether name is a plain, visible *.png file name with no
// directory components.
func ValidName(name string) bool {
	if name == "" || len(name) > 255 {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	if strings.HasPrefix(name, ".") || filepath.Base(name) != name {
		return false
	}
	ext := filepath.Ext(name)
	return strings.EqualFold(ext, fileExt) && len(name) > len(ext)
}

// isManaged reports whether a directory entry was created by Save.
func isManaged(name string) bool {
	switch {
	case strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, fileExt):
		return true
	case strings.HasPrefix(name, tempPrefix) && strings.HasSuffix(name, tempExt):
		return true
	default:
		return false
	}
}
