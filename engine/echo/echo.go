// Package echo is a synthetic clustering engine. It performs no inference:
// it echoes the leading K columns of every observation matrix back as that
// item's cluster assignment and fills the remaining posteriors with uniform
// values whose shapes follow the input and the truncation level. The
// cluster count K = min(D, trunc), so the whole matrix comes back whenever
// trunc >= D.
//
// Shapes produced for J groups, I_j items of N_ij x D:
//
//	qY        I_j x T          T = trunc, entries 1/T
//	qZ        N_ij x K         the first K columns of X{j}{i}
//	weights   J x log(1/T)
//	classes   T x log(1/K)
//	clusters  K unit-vector means in D dimensions, identity covariance
//
// It is useful for exercising the call boundary end to end without the
// native library.
package echo

import (
	"fmt"
	"math"
	"os"

	"gonum.org/v1/gonum/mat"

	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/scm"
)

// Name is the engine's registered name.
const Name = "echo"

// Engine is the echo engine. The zero value is ready to use.
type Engine struct{}

// New returns an echo engine.
func New() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string { return Name }

// LearnSCM implements scm.Engine.
func (e *Engine) LearnSCM(x scm.GroupedMatrixSet, cfg scm.Configuration) (*scm.ResultSet, error) {
	if x.Groups() == 0 {
		return nil, errors.New("echo: no groups")
	}
	T := int(cfg.Trunc)
	D := x.Dims()
	K := min(D, T)
	if T < 1 || K < 1 {
		return nil, errors.Newf("echo: cannot build a %d class, %d cluster result", T, K)
	}

	if cfg.Verbose {
		fmt.Fprintf(os.Stdout, "echo: %d groups, %d observations, %d dimensions\n",
			x.Groups(), x.Observations(), D)
	}

	rs := &scm.ResultSet{
		QY:      make([]*mat.Dense, x.Groups()),
		QZ:      make([][]*mat.Dense, x.Groups()),
		Weights: make([]scm.WeightDistribution, x.Groups()),
		Classes: make([]scm.WeightDistribution, T),
	}

	for j, group := range x {
		rs.QY[j] = filled(len(group), T, 1/float64(T))
		rs.QZ[j] = make([]*mat.Dense, len(group))
		for i, item := range group {
			n, _ := item.Dims()
			rs.QZ[j][i] = mat.DenseCopyOf(item.Slice(0, n, 0, K))
		}
		rs.Weights[j] = uniformLog(T)
		if cfg.Verbose {
			fmt.Fprintf(os.Stdout, "echo: group %d, %d items\n", j+1, len(group))
		}
	}

	for t := range rs.Classes {
		rs.Classes[t] = uniformLog(K)
	}

	rs.Clusters = make([]scm.GaussianCluster, K)
	for k := range rs.Clusters {
		mu := make([]float64, D)
		mu[k] = 1
		rs.Clusters[k] = scm.Gaussian{Mu: mu, Sigma: identity(D)}
	}

	if cfg.Verbose {
		fmt.Fprintln(os.Stdout, "echo: done")
	}
	return rs, nil
}

func filled(rows, cols int, v float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = v
	}
	return mat.NewDense(rows, cols, data)
}

func uniformLog(n int) scm.LogWeights {
	w := make(scm.LogWeights, n)
	for i := range w {
		w[i] = math.Log(1 / float64(n))
	}
	return w
}

func identity(n int) *mat.Dense {
	m := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		m.Set(i, i, 1)
	}
	return m
}
