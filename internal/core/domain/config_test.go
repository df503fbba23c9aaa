package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/weft/internal/core/domain"
)

func TestConfigMap_Take(t *testing.T) {
	m := domain.ConfigMap{"json": map[string]any{"indent": 2}, "lineWidth": 80}

	v, ok := m.Take("json")
	assert.True(t, ok)
	assert.Equal(t, map[string]any{"indent": 2}, v)
	assert.NotContains(t, m, "json")
	assert.Contains(t, m, "lineWidth")

	_, ok = m.Take("json")
	assert.False(t, ok)
}

func TestConfigMap_Clone(t *testing.T) {
	m := domain.ConfigMap{"a": 1}
	c := m.Clone()
	c.Take("a")
	assert.Contains(t, m, "a")
}

func TestParseNewLineKind(t *testing.T) {
	for _, s := range []string{"auto", "lf", "crlf", "system"} {
		k, ok := domain.ParseNewLineKind(s)
		assert.True(t, ok, s)
		assert.Equal(t, domain.NewLineKind(s), k)
	}

	_, ok := domain.ParseNewLineKind("cr")
	assert.False(t, ok)
}

func TestIsURLLocator(t *testing.T) {
	assert.True(t, domain.IsURLLocator("https://plugins.example.com/json-0.2.0.json"))
	assert.True(t, domain.IsURLLocator("http://localhost:8080/p.yaml"))
	assert.False(t, domain.IsURLLocator("./plugins/json.yaml"))
	assert.False(t, domain.IsURLLocator("/abs/json.yaml"))
	assert.False(t, domain.IsURLLocator("file:///abs/json.yaml"))
}
