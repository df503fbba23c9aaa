package domain

import "go.trai.ch/zerr"

var (
	// ErrResolvePlugins is returned when any stage of plugin resolution fails.
	// The underlying cause is joined with it so callers can match either.
	ErrResolvePlugins = zerr.New("failed to resolve plugins")

	// ErrNoPluginsFound is returned when plugin resolution succeeds but yields no plugins.
	ErrNoPluginsFound = zerr.New(
		"No formatting plugins found. Ensure at least one is specified in the 'plugins' array of the configuration file.",
	)

	// ErrManifestMarshalFailed is returned when the plugin cache manifest cannot be marshaled.
	ErrManifestMarshalFailed = zerr.New("failed to marshal plugin cache manifest")

	// ErrManifestWriteFailed is returned when the plugin cache manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write plugin cache manifest")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when no config file can be found.
	ErrConfigNotFound = zerr.New("could not find weft.yaml or weft.json")

	// ErrInvalidStringList is returned when 'plugins', 'includes' or 'excludes' is not a list of strings.
	ErrInvalidStringList = zerr.New("expected the property to be an array of strings")

	// ErrPluginConfigNotObject is returned when a plugin's config key holds something other than an object.
	ErrPluginConfigNotObject = zerr.New("expected the plugin configuration property to be an object")

	// ErrGlobalConfigDiagnostics is returned when the global configuration produced diagnostics.
	ErrGlobalConfigDiagnostics = zerr.New("error resolving global config from configuration file")

	// ErrPluginFetchFailed is returned when a plugin source cannot be read or downloaded.
	ErrPluginFetchFailed = zerr.New("failed to fetch plugin")

	// ErrPluginDescriptorInvalid is returned when a plugin descriptor cannot be decoded or validated.
	ErrPluginDescriptorInvalid = zerr.New("invalid plugin descriptor")

	// ErrPluginArtifactWriteFailed is returned when a plugin artifact cannot be stored in the cache.
	ErrPluginArtifactWriteFailed = zerr.New("failed to write plugin artifact")

	// ErrCacheClearFailed is returned when the cache directory cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to clear plugin cache")
)
