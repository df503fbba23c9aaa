package environment_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weft/internal/adapters/environment"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOS_WriteAndReadFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := environment.NewOSWithCacheDir(t.TempDir(), mocks.NewMockLogger(ctrl))

	path := filepath.Join(env.CacheDir(), "nested", "dir", "file.json")
	require.NoError(t, env.WriteFile(path, []byte(`{"a":1}`)))
	require.NoError(t, env.WriteFile(path, []byte(`{"a":2}`)))

	data, err := env.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":2}`, string(data))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestOS_ReadMissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := environment.NewOSWithCacheDir(t.TempDir(), mocks.NewMockLogger(ctrl))

	_, err := env.ReadFile(filepath.Join(env.CacheDir(), "missing.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOS_RemoveDirAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	env := environment.NewOSWithCacheDir(t.TempDir(), mocks.NewMockLogger(ctrl))

	plugins := domain.PluginsDir(env.CacheDir())
	require.NoError(t, env.WriteFile(filepath.Join(plugins, "json-0.1.0.json"), []byte("{}")))

	require.NoError(t, env.RemoveDirAll(plugins))
	_, err := os.Stat(plugins)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	require.NoError(t, env.RemoveDirAll(plugins), "removing a missing directory is not an error")
}

func TestOS_LogError(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	env := environment.NewOSWithCacheDir(t.TempDir(), log)

	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), "manifest is corrupt")
	}).Times(1)

	env.LogError("manifest is corrupt")
}

func TestNewOS_UsesEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(domain.CacheDirEnvVar, dir)

	ctrl := gomock.NewController(t)
	env, err := environment.NewOS(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	assert.Equal(t, dir, env.CacheDir())
}
