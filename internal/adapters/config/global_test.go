package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weft/internal/adapters/config"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestGlobalResolver_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	configMap := domain.ConfigMap{
		"lineWidth":   120,
		"indentWidth": 4,
		"useTabs":     false,
		"newLineKind": "crlf",
	}

	cfg, err := config.NewGlobalResolver(mockLogger).Resolve(configMap, domain.GlobalConfigOptions{
		CheckUnknownPropertyDiagnostics: true,
	})
	require.NoError(t, err)

	require.NotNil(t, cfg.LineWidth)
	assert.Equal(t, uint32(120), *cfg.LineWidth)
	require.NotNil(t, cfg.IndentWidth)
	assert.Equal(t, uint8(4), *cfg.IndentWidth)
	require.NotNil(t, cfg.UseTabs)
	assert.False(t, *cfg.UseTabs)
	require.NotNil(t, cfg.NewLineKind)
	assert.Equal(t, domain.NewLineCRLF, *cfg.NewLineKind)
	assert.Empty(t, configMap)
}

func TestGlobalResolver_Resolve_UnsetValuesStayNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	cfg, err := config.NewGlobalResolver(mockLogger).Resolve(domain.ConfigMap{}, domain.GlobalConfigOptions{})
	require.NoError(t, err)
	assert.Equal(t, domain.GlobalConfiguration{}, cfg)
}

func TestGlobalResolver_Resolve_UnknownProperties(t *testing.T) {
	t.Run("reported when checked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockLogger := mocks.NewMockLogger(ctrl)
		gomock.InOrder(
			mockLogger.EXPECT().Warn("Unknown property in configuration file: alpha"),
			mockLogger.EXPECT().Warn("Unknown property in configuration file: zeta"),
		)

		configMap := domain.ConfigMap{"zeta": 1, "alpha": true, "lineWidth": 80}
		_, err := config.NewGlobalResolver(mockLogger).Resolve(configMap, domain.GlobalConfigOptions{
			CheckUnknownPropertyDiagnostics: true,
		})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrGlobalConfigDiagnostics.Error())
		assert.ErrorContains(t, err, "had 2 config diagnostic(s)")
	})

	t.Run("ignored when not checked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockLogger := mocks.NewMockLogger(ctrl)

		configMap := domain.ConfigMap{"zeta": 1, "alpha": true}
		_, err := config.NewGlobalResolver(mockLogger).Resolve(configMap, domain.GlobalConfigOptions{})
		require.NoError(t, err)
	})
}

func TestGlobalResolver_Resolve_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
		warn  string
	}{
		{"negative line width", "lineWidth", -1, "Expected 'lineWidth' to be a positive integer."},
		{"zero line width", "lineWidth", 0, "Expected 'lineWidth' to be a positive integer."},
		{"fractional line width", "lineWidth", 1.5, "Expected 'lineWidth' to be a positive integer."},
		{"indent width overflow", "indentWidth", 300, "Expected 'indentWidth' to be an integer between 0 and 255."},
		{"string use tabs", "useTabs", "yes", "Expected 'useTabs' to be a boolean."},
		{
			"unknown newline kind", "newLineKind", "cr",
			"Expected 'newLineKind' to be one of auto, lf, crlf or system, but found 'cr'.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Warn(tt.warn)

			_, err := config.NewGlobalResolver(mockLogger).Resolve(
				domain.ConfigMap{tt.key: tt.value},
				domain.GlobalConfigOptions{},
			)
			require.Error(t, err)
			assert.ErrorContains(t, err, "had 1 config diagnostic(s)")
		})
	}
}
