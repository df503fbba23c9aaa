package app_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weft/internal/app"
	"go.trai.ch/weft/internal/core/domain"
	_ "go.trai.ch/weft/internal/wiring" // Register providers
)

func TestAppWiring(t *testing.T) {
	t.Setenv(domain.CacheDirEnvVar, t.TempDir())

	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
