package config

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.GlobalConfigResolver = (*GlobalResolver)(nil)

// GlobalResolver implements ports.GlobalConfigResolver.
type GlobalResolver struct {
	logger ports.Logger
}

// NewGlobalResolver creates a GlobalResolver that reports diagnostics through logger.
func NewGlobalResolver(logger ports.Logger) *GlobalResolver {
	return &GlobalResolver{logger: logger}
}

// Resolve consumes the known global properties from configMap. Invalid values, and
// leftover properties when opts.CheckUnknownPropertyDiagnostics is set, are logged as
// diagnostics and fail the resolution.
func (g *GlobalResolver) Resolve(
	configMap domain.ConfigMap,
	opts domain.GlobalConfigOptions,
) (domain.GlobalConfiguration, error) {
	var cfg domain.GlobalConfiguration
	var diagnostics []string

	if raw, ok := configMap.Take("lineWidth"); ok {
		if n, ok := toUint(raw, math.MaxUint32); ok && n > 0 {
			v := uint32(n)
			cfg.LineWidth = &v
		} else {
			diagnostics = append(diagnostics, "Expected 'lineWidth' to be a positive integer.")
		}
	}

	if raw, ok := configMap.Take("indentWidth"); ok {
		if n, ok := toUint(raw, math.MaxUint8); ok {
			v := uint8(n)
			cfg.IndentWidth = &v
		} else {
			diagnostics = append(diagnostics, "Expected 'indentWidth' to be an integer between 0 and 255.")
		}
	}

	if raw, ok := configMap.Take("useTabs"); ok {
		if v, ok := raw.(bool); ok {
			cfg.UseTabs = &v
		} else {
			diagnostics = append(diagnostics, "Expected 'useTabs' to be a boolean.")
		}
	}

	if raw, ok := configMap.Take("newLineKind"); ok {
		s, _ := raw.(string)
		if v, ok := domain.ParseNewLineKind(s); ok {
			cfg.NewLineKind = &v
		} else {
			diagnostics = append(diagnostics, fmt.Sprintf(
				"Expected 'newLineKind' to be one of auto, lf, crlf or system, but found '%v'.", raw))
		}
	}

	if opts.CheckUnknownPropertyDiagnostics {
		for _, key := range slices.Sorted(maps.Keys(configMap)) {
			diagnostics = append(diagnostics, "Unknown property in configuration file: "+key)
		}
	}

	for _, d := range diagnostics {
		g.logger.Warn(d)
	}
	if len(diagnostics) > 0 {
		cause := zerr.New(fmt.Sprintf("had %d config diagnostic(s)", len(diagnostics)))
		return cfg, zerr.Wrap(cause, domain.ErrGlobalConfigDiagnostics.Error())
	}
	return cfg, nil
}

func toUint(raw any, limit uint64) (uint64, bool) {
	var n uint64
	switch v := raw.(type) {
	case int:
		if v < 0 {
			return 0, false
		}
		n = uint64(v)
	case int64:
		if v < 0 {
			return 0, false
		}
		n = uint64(v)
	case uint64:
		n = v
	case float64:
		if v < 0 || v != math.Trunc(v) || v > float64(limit) {
			return 0, false
		}
		n = uint64(v)
	default:
		return 0, false
	}
	return n, n <= limit
}
