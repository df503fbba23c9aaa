package environment

import (
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/weft/internal/core/ports"
)

var _ ports.Environment = (*Memory)(nil)

// MemoryCacheDir is the cache root of a Memory environment.
const MemoryCacheDir = "/cache"

// Memory is an in-memory ports.Environment that records logged errors.
// Paths use forward slashes.
type Memory struct {
	mu           sync.Mutex
	files        map[string][]byte
	loggedErrors []string
	removedDirs  []string

	// WriteErr, when set, is returned by every WriteFile call.
	WriteErr error
}

// NewMemory creates an empty in-memory environment.
func NewMemory() *Memory {
	return &Memory{files: make(map[string][]byte)}
}

// ReadFile returns the contents stored at p.
func (m *Memory) ReadFile(p string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, ok := m.files[path.Clean(p)]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: p, Err: fs.ErrNotExist}
	}
	return slices.Clone(data), nil
}

// WriteFile stores data at p.
func (m *Memory) WriteFile(p string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.files[path.Clean(p)] = slices.Clone(data)
	return nil
}

// RemoveDirAll drops every file at or beneath p.
func (m *Memory) RemoveDirAll(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := path.Clean(p)
	m.removedDirs = append(m.removedDirs, dir)
	for name := range m.files {
		if name == dir || strings.HasPrefix(name, dir+"/") {
			delete(m.files, name)
		}
	}
	return nil
}

// CacheDir returns MemoryCacheDir.
func (m *Memory) CacheDir() string {
	return MemoryCacheDir
}

// LogError records msg.
func (m *Memory) LogError(msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loggedErrors = append(m.loggedErrors, msg)
}

// TakeLoggedErrors returns and clears the recorded error messages.
func (m *Memory) TakeLoggedErrors() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	errs := m.loggedErrors
	m.loggedErrors = nil
	return errs
}

// RemovedDirs returns every directory passed to RemoveDirAll, in call order.
func (m *Memory) RemovedDirs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.removedDirs)
}

// Exists reports whether a file is stored at p.
func (m *Memory) Exists(p string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.files[path.Clean(p)]
	return ok
}

// Files returns the stored paths in sorted order.
func (m *Memory) Files() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.files))
}
