package scm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/teranos/scm/host"
)

func TestMarshalOutput_Shapes(t *testing.T) {
	x := testSet()
	rs := shapedResult(x, 3, 2)

	out, err := MarshalOutput(rs, host.Native)
	require.NoError(t, err)
	require.Len(t, out.Values(), len(OutputNames))

	qY := out.QY.(host.Cell)
	require.Equal(t, 2, qY.Len())
	r, c := qY.Index(0).(host.Matrix).Dims()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})

	qZ := out.QZ.(host.Cell)
	require.Equal(t, 2, qZ.Len())
	r, c = qZ.Index(0).(host.Cell).Index(1).(host.Matrix).Dims()
	assert.Equal(t, [2]int{1, 2}, [2]int{r, c})

	assert.Equal(t, 2, out.Weights.(host.Cell).Len())
	assert.Equal(t, 3, out.Classes.(host.Cell).Len())
	assert.Equal(t, 2, out.Means.(host.Cell).Len())
	assert.Equal(t, 2, out.Covariances.(host.Cell).Len())

	r, c = out.Means.(host.Cell).Index(0).(host.Matrix).Dims()
	assert.Equal(t, [2]int{1, 2}, [2]int{r, c})
	r, c = out.Covariances.(host.Cell).Index(1).(host.Matrix).Dims()
	assert.Equal(t, [2]int{2, 2}, [2]int{r, c})
}

func TestMarshalOutput_WeightsAreExpNotRenormalized(t *testing.T) {
	rs := &ResultSet{
		Weights: []WeightDistribution{LogWeights{math.Log(0.2), math.Log(0.3)}},
		Classes: []WeightDistribution{LogWeights{0}, LogWeights{math.Log(0.5)}},
	}

	out, err := MarshalOutput(rs, host.Native)
	require.NoError(t, err)

	w := out.Weights.(host.Cell).Index(0).(host.Matrix)
	r, c := w.Dims()
	require.Equal(t, 1, r)
	require.Equal(t, 2, c)
	assert.InDelta(t, 0.2, w.At(0, 0), 1e-12)
	assert.InDelta(t, 0.3, w.At(0, 1), 1e-12)

	classes := out.Classes.(host.Cell)
	assert.InDelta(t, 1.0, classes.Index(0).(host.Matrix).At(0, 0), 1e-12)
	assert.InDelta(t, 0.5, classes.Index(1).(host.Matrix).At(0, 0), 1e-12)
}

func TestMarshalOutput_CopiesValues(t *testing.T) {
	sigma := mat.NewDense(2, 2, []float64{2, 0.5, 0.5, 1})
	mu := []float64{-1, 3}
	qy := mat.NewDense(1, 1, []float64{1})
	rs := &ResultSet{
		QY:       []*mat.Dense{qy},
		Clusters: []GaussianCluster{Gaussian{Mu: mu, Sigma: sigma}},
	}

	out, err := MarshalOutput(rs, host.Native)
	require.NoError(t, err)

	cov := out.Covariances.(host.Cell).Index(0).(host.Matrix)
	assert.Equal(t, 0.5, cov.At(0, 1))
	assert.Equal(t, 0.5, cov.At(1, 0))
	mean := out.Means.(host.Cell).Index(0).(host.Matrix)
	assert.Equal(t, -1.0, mean.At(0, 0))
	assert.Equal(t, 3.0, mean.At(0, 1))

	sigma.Set(0, 1, 99)
	qy.Set(0, 0, 99)
	assert.Equal(t, 0.5, cov.At(0, 1))
	assert.Equal(t, 1.0, out.QY.(host.Cell).Index(0).(host.Matrix).At(0, 0))
}

func TestMarshalOutput_NilResult(t *testing.T) {
	_, err := MarshalOutput(nil, host.Native)
	assert.Error(t, err)
}
