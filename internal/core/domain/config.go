package domain

// ConfigMap maps top-level configuration property names to their raw values.
// Values are whatever the YAML/JSON decoder produced.
type ConfigMap map[string]any

// Take removes key from the map and returns its previous value.
func (m ConfigMap) Take(key string) (any, bool) {
	v, ok := m[key]
	if ok {
		delete(m, key)
	}
	return v, ok
}

// Clone returns a shallow copy of the map.
func (m ConfigMap) Clone() ConfigMap {
	out := make(ConfigMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// ConfigArgs holds the command line arguments that influence configuration resolution.
type ConfigArgs struct {
	// ConfigPath is an explicit configuration file. Empty means discover one.
	ConfigPath string
	// Plugins, when non-empty, replaces the configured plugin list.
	Plugins []string
}

// ResolvedConfig is a parsed configuration file.
type ResolvedConfig struct {
	// BaseDir is the directory of the configuration file.
	BaseDir string
	// Plugins are the plugin locators in the order they were declared.
	Plugins  []string
	Includes []string
	Excludes []string
	// ConfigMap holds every remaining top-level property.
	ConfigMap ConfigMap
}

// NewLineKind selects the newline sequence written by plugins.
type NewLineKind string

const (
	// NewLineAuto keeps whatever the file already uses.
	NewLineAuto NewLineKind = "auto"
	// NewLineLF uses "\n".
	NewLineLF NewLineKind = "lf"
	// NewLineCRLF uses "\r\n".
	NewLineCRLF NewLineKind = "crlf"
	// NewLineSystem uses the platform default.
	NewLineSystem NewLineKind = "system"
)

// ParseNewLineKind reports whether s names a known newline kind.
func ParseNewLineKind(s string) (NewLineKind, bool) {
	switch k := NewLineKind(s); k {
	case NewLineAuto, NewLineLF, NewLineCRLF, NewLineSystem:
		return k, true
	default:
		return "", false
	}
}

// GlobalConfiguration is shared by every plugin. Nil fields were not set.
type GlobalConfiguration struct {
	LineWidth   *uint32      `json:"lineWidth,omitempty"`
	IndentWidth *uint8       `json:"indentWidth,omitempty"`
	UseTabs     *bool        `json:"useTabs,omitempty"`
	NewLineKind *NewLineKind `json:"newLineKind,omitempty"`
}

// GlobalConfigOptions controls global configuration resolution.
type GlobalConfigOptions struct {
	// CheckUnknownPropertyDiagnostics reports leftover top-level keys as diagnostics.
	CheckUnknownPropertyDiagnostics bool
}
