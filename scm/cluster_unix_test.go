//go:build unix

package scm_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/scm/diag"
	"github.com/teranos/scm/engine/echo"
	"github.com/teranos/scm/host"
	"github.com/teranos/scm/scm"
)

func TestCluster_VerboseOutputReachesConsole(t *testing.T) {
	var console bytes.Buffer
	a, err := scm.NewAdapter(echo.New(), scm.WithConsole(&console))
	require.NoError(t, err)

	before := diag.Stdout.Stats()

	x := host.NewCell(host.NewCell(host.NewMatrix(2, 2, []float64{1, 2, 3, 4})))
	options := host.NewStruct(map[string]host.Value{
		"trunc":   host.Scalar(2),
		"verbose": host.Logical(true),
	})
	_, err = a.Cluster(context.Background(), x, options)
	require.NoError(t, err)

	assert.Contains(t, console.String(), "echo: 1 groups, 2 observations, 2 dimensions")
	assert.Contains(t, console.String(), "echo: done")

	after := diag.Stdout.Stats()
	assert.Equal(t, before.Acquired+1, after.Acquired)
	assert.Equal(t, before.Released+1, after.Released)
	assert.False(t, after.Active)
}
