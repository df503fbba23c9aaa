package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppDirName is the name of the per-user cache directory.
	AppDirName = "weft"

	// CacheDirEnvVar overrides the cache root when set.
	CacheDirEnvVar = "WEFT_CACHE_DIR"

	// ManifestFileName is the name of the plugin cache manifest inside the cache root.
	ManifestFileName = "plugin-cache-manifest.json"

	// PluginsDirName is the name of the plugin artifact directory inside the cache root.
	PluginsDirName = "plugins"

	// YAMLConfigFileName is the preferred configuration file name.
	YAMLConfigFileName = "weft.yaml"

	// JSONConfigFileName is the fallback configuration file name.
	JSONConfigFileName = "weft.json"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheDir returns the cache root.
// It honours WEFT_CACHE_DIR and otherwise joins the user cache directory and "weft".
func DefaultCacheDir() (string, error) {
	if dir := os.Getenv(CacheDirEnvVar); dir != "" {
		return filepath.Clean(dir), nil
	}
	base, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, AppDirName), nil
}

// ManifestPath returns the path of the plugin cache manifest under cacheDir.
func ManifestPath(cacheDir string) string {
	return filepath.Join(cacheDir, ManifestFileName)
}

// PluginsDir returns the plugin artifact directory under cacheDir.
func PluginsDir(cacheDir string) string {
	return filepath.Join(cacheDir, PluginsDirName)
}
