package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/taskid/internal/core/domain"
)

func TestCatalog(t *testing.T) {
	c := domain.NewCatalog()

	for _, name := range []string{"Zeta", "Alpha"} {
		d, err := domain.NewTaskDescriptor(name)
		require.NoError(t, err)
		require.NoError(t, c.Register(d))
	}

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, []string{"Alpha", "Zeta"}, c.Names())

	d, err := c.Lookup("Alpha")
	require.NoError(t, err)
	assert.Equal(t, "Alpha", d.Name())

	_, err = c.Lookup("Missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task not found")

	dup, err := domain.NewTaskDescriptor("Zeta")
	require.NoError(t, err)
	err = c.Register(dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task already exists")
}
