// Package environment implements ports.Environment for the real filesystem and for tests.
package environment

import (
	"os"
	"path/filepath"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Environment = (*OS)(nil)

// OS implements ports.Environment on the local filesystem.
type OS struct {
	cacheDir string
	logger   ports.Logger
}

// NewOS creates an environment rooted at the default cache directory.
func NewOS(logger ports.Logger) (*OS, error) {
	cacheDir, err := domain.DefaultCacheDir()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine cache directory")
	}
	return NewOSWithCacheDir(cacheDir, logger), nil
}

// NewOSWithCacheDir creates an environment rooted at cacheDir.
func NewOSWithCacheDir(cacheDir string, logger ports.Logger) *OS {
	return &OS{
		cacheDir: filepath.Clean(cacheDir),
		logger:   logger,
	}
}

// ReadFile reads the entire file at path.
func (e *OS) ReadFile(path string) ([]byte, error) {
	//nolint:gosec // Paths are built from the cache root or user configuration
	return os.ReadFile(path)
}

// WriteFile writes data to path atomically by writing a temp file and renaming it.
func (e *OS) WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".weft-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}
	if err := tmpFile.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// RemoveDirAll removes path and any children it contains.
func (e *OS) RemoveDirAll(path string) error {
	return os.RemoveAll(path)
}

// CacheDir returns the cache root.
func (e *OS) CacheDir() string {
	return e.cacheDir
}

// LogError reports msg through the logger.
func (e *OS) LogError(msg string) {
	e.logger.Error(zerr.New(msg))
}
