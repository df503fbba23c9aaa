package plugin

import (
	"encoding/json"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// decodeDescriptor parses a JSON or YAML plugin descriptor and validates it.
func decodeDescriptor(data []byte) (domain.PluginInfo, error) {
	var info domain.PluginInfo
	// yaml.v3 also accepts JSON documents.
	if err := yaml.Unmarshal(data, &info); err != nil {
		return domain.PluginInfo{}, zerr.Wrap(err, domain.ErrPluginDescriptorInvalid.Error())
	}
	if err := info.Validate(); err != nil {
		return domain.PluginInfo{}, err
	}
	return info, nil
}

// encodeArtifact renders the normalized descriptor stored in the plugins directory.
func encodeArtifact(info domain.PluginInfo) ([]byte, error) {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrPluginArtifactWriteFailed.Error())
	}
	return data, nil
}
