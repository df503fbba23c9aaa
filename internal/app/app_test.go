package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weft/internal/adapters/environment"
	"go.trai.ch/weft/internal/adapters/telemetry"
	"go.trai.ch/weft/internal/app"
	"go.trai.ch/weft/internal/core/domain"
	"go.trai.ch/weft/internal/core/ports"
	"go.trai.ch/weft/internal/core/ports/mocks"
	"go.trai.ch/weft/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	configResolver *mocks.MockConfigResolver
	pluginResolver *mocks.MockPluginResolver
	globalResolver *mocks.MockGlobalConfigResolver
	cache          *mocks.MockPluginCache
	logger         *mocks.MockLogger
	env            *environment.Memory
	app            *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		configResolver: mocks.NewMockConfigResolver(ctrl),
		pluginResolver: mocks.NewMockPluginResolver(ctrl),
		globalResolver: mocks.NewMockGlobalConfigResolver(ctrl),
		cache:          mocks.NewMockPluginCache(ctrl),
		logger:         mocks.NewMockLogger(ctrl),
		env:            environment.NewMemory(),
	}
	p := pipeline.New(f.configResolver, f.pluginResolver, f.globalResolver, telemetry.NewOTelTracer("app-test"))
	f.app = app.New(f.configResolver, p, f.cache, f.env, f.logger)
	return f
}

func pluginWith(ctrl *gomock.Controller, key string, extensions ...string) *mocks.MockPlugin {
	p := mocks.NewMockPlugin(ctrl)
	p.EXPECT().Info().Return(domain.PluginInfo{
		Name:           "weft-plugin-" + key,
		Version:        "1.0.0",
		ConfigKey:      key,
		FileExtensions: extensions,
	}).AnyTimes()
	p.EXPECT().SetConfig(gomock.Any(), gomock.Any()).AnyTimes()
	return p
}

func TestApp_Plugins(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	jsonPlugin := pluginWith(ctrl, "json", "json")

	opts := app.Options{ConfigPath: "/repo/weft.yaml"}
	cfg := &domain.ResolvedConfig{Plugins: []string{"/p/json.yaml"}, ConfigMap: domain.ConfigMap{}}

	gomock.InOrder(
		f.configResolver.EXPECT().ResolveFromArgs(domain.ConfigArgs{ConfigPath: "/repo/weft.yaml"}).Return(cfg, nil),
		f.pluginResolver.EXPECT().ResolvePlugins(gomock.Any(), cfg.Plugins).Return([]ports.Plugin{jsonPlugin}, nil),
		f.globalResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.GlobalConfiguration{}, nil),
		f.cache.EXPECT().Persist().Return(nil),
	)

	plugins, err := f.app.Plugins(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, []ports.Plugin{jsonPlugin}, plugins)
}

func TestApp_Plugins_ConfigError(t *testing.T) {
	f := newFixture(t)
	f.configResolver.EXPECT().ResolveFromArgs(gomock.Any()).Return(nil, domain.ErrConfigNotFound)
	f.cache.EXPECT().Persist().Return(nil)

	_, err := f.app.Plugins(context.Background(), app.Options{})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestApp_Plugins_NoneFound(t *testing.T) {
	f := newFixture(t)
	f.configResolver.EXPECT().ResolveFromArgs(gomock.Any()).Return(&domain.ResolvedConfig{ConfigMap: domain.ConfigMap{}}, nil)
	f.pluginResolver.EXPECT().ResolvePlugins(gomock.Any(), gomock.Any()).Return(nil, nil)
	f.globalResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.GlobalConfiguration{}, nil)
	f.cache.EXPECT().Persist().Return(nil)

	_, err := f.app.Plugins(context.Background(), app.Options{})
	assert.ErrorIs(t, err, domain.ErrNoPluginsFound)
}

func TestApp_Plugins_PersistFailure(t *testing.T) {
	f := newFixture(t)
	ctrl := gomock.NewController(t)
	jsonPlugin := pluginWith(ctrl, "json", "json")
	persistErr := errors.New("disk full")

	f.configResolver.EXPECT().ResolveFromArgs(gomock.Any()).Return(&domain.ResolvedConfig{ConfigMap: domain.ConfigMap{}}, nil)
	f.pluginResolver.EXPECT().ResolvePlugins(gomock.Any(), gomock.Any()).Return([]ports.Plugin{jsonPlugin}, nil)
	f.globalResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.GlobalConfiguration{}, nil)
	f.cache.EXPECT().Persist().Return(persistErr)

	plugins, err := f.app.Plugins(context.Background(), app.Options{})
	assert.ErrorIs(t, err, persistErr)
	assert.Nil(t, plugins)
}

func TestApp_FileExtensions(t *testing.T) {
	t.Run("union of plugin extensions", func(t *testing.T) {
		f := newFixture(t)
		ctrl := gomock.NewController(t)
		a := pluginWith(ctrl, "typescript", "ts", "tsx", "js")
		b := pluginWith(ctrl, "json", "json", "js")

		f.configResolver.EXPECT().ResolveFromArgs(gomock.Any()).Return(&domain.ResolvedConfig{ConfigMap: domain.ConfigMap{}}, nil)
		f.pluginResolver.EXPECT().ResolvePlugins(gomock.Any(), gomock.Any()).Return([]ports.Plugin{a, b}, nil)
		f.globalResolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(domain.GlobalConfiguration{}, nil)
		f.cache.EXPECT().Persist().Return(nil)

		extensions, err := f.app.FileExtensions(context.Background(), app.Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"js", "json", "ts", "tsx"}, extensions)
	})

	t.Run("config errors are swallowed", func(t *testing.T) {
		f := newFixture(t)
		f.configResolver.EXPECT().ResolveFromArgs(gomock.Any()).Return(nil, domain.ErrConfigNotFound)
		f.cache.EXPECT().Persist().Return(nil)

		extensions, err := f.app.FileExtensions(context.Background(), app.Options{})
		require.NoError(t, err)
		assert.Empty(t, extensions)
	})
}

func TestApp_ClearCache(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.env.WriteFile(domain.ManifestPath(environment.MemoryCacheDir), []byte("{}")))
	require.NoError(t, f.env.WriteFile(domain.PluginsDir(environment.MemoryCacheDir)+"/p-1.0.0.json", []byte("{}")))

	f.logger.EXPECT().Info("removed plugin cache /cache")

	require.NoError(t, f.app.ClearCache(context.Background(), nil))
	assert.Empty(t, f.env.Files())
	assert.Equal(t, []string{environment.MemoryCacheDir}, f.env.RemovedDirs())
}

func TestApp_ClearCache_Locators(t *testing.T) {
	f := newFixture(t)
	wd, err := os.Getwd()
	require.NoError(t, err)

	local := filepath.Join(wd, "plugins", "json.yaml")
	remote := "https://plugins.example.com/markdown.json"
	gomock.InOrder(
		f.cache.EXPECT().ForgetPlugin(local),
		f.logger.EXPECT().Info("removed " + local + " from the plugin cache"),
		f.cache.EXPECT().ForgetPlugin(remote),
		f.logger.EXPECT().Info("removed " + remote + " from the plugin cache"),
		f.cache.EXPECT().Persist().Return(nil),
	)

	require.NoError(t, f.app.ClearCache(context.Background(), []string{"plugins/json.yaml", remote}))
	assert.Empty(t, f.env.RemovedDirs())
}

type switchingLogger struct {
	*mocks.MockLogger
	json bool
}

func (l *switchingLogger) SetJSON(enable bool) { l.json = enable }

func TestApp_Configure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := &switchingLogger{MockLogger: mocks.NewMockLogger(ctrl)}
	log.EXPECT().Info(gomock.Any()).MinTimes(1)

	a := app.New(nil, nil, nil, environment.NewMemory(), log)
	shutdown := a.Configure(app.Options{LogJSON: true, Trace: true})
	assert.True(t, log.json)

	_, span := telemetry.NewOTelTracer("configure-test").Start(context.Background(), "probe")
	span.End()
	require.NoError(t, shutdown(context.Background()))

	noop := a.Configure(app.Options{})
	assert.False(t, log.json)
	require.NoError(t, noop(context.Background()))
}
