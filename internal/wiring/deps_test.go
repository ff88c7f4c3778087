package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskid/internal/app"
	_ "go.trai.ch/taskid/internal/wiring"
)

// TestGraftResolvesComponents checks that every registered node can be built
// and that the components the CLI needs come out of the graph.
func TestGraftResolvesComponents(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
