// Package ports defines the core interfaces for the application.
package ports

// Environment is the filesystem and logging capability used by the plugin cache.
//
// Implementations are responsible for:
//   - Locating the cache root (see domain.DefaultCacheDir)
//   - Creating parent directories on write
//   - Surfacing human-readable errors to the user
type Environment interface {
	// ReadFile reads the entire file at path.
	// A missing file must be reported with an error matching fs.ErrNotExist.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file at path with data, creating parent directories.
	WriteFile(path string, data []byte) error

	// RemoveDirAll removes path and everything beneath it. A missing path is not an error.
	RemoveDirAll(path string) error

	// CacheDir returns the cache root.
	CacheDir() string

	// LogError reports a human-readable error message.
	LogError(msg string)
}
