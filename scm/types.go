package scm

import (
	"gonum.org/v1/gonum/mat"
)

// GroupedMatrixSet is J groups of I_j observation matrices, each N_ij x D.
// D is the same for every matrix.
type GroupedMatrixSet [][]*mat.Dense

// Groups returns J.
func (x GroupedMatrixSet) Groups() int { return len(x) }

// Items returns I_j for group j.
func (x GroupedMatrixSet) Items(j int) int { return len(x[j]) }

// Dims returns D, or 0 for an empty set.
func (x GroupedMatrixSet) Dims() int {
	for _, group := range x {
		for _, item := range group {
			_, d := item.Dims()
			return d
		}
	}
	return 0
}

// Observations returns the total number of rows across every matrix.
func (x GroupedMatrixSet) Observations() int {
	n := 0
	for _, group := range x {
		for _, item := range group {
			r, _ := item.Dims()
			n += r
		}
	}
	return n
}

// Configuration is the validated, immutable option record for one call.
type Configuration struct {
	Trunc   uint    // upper bound on mixture components, >= 1
	Prior   float64 // Dirichlet / Normal-Wishart prior strength, > 0
	Verbose bool    // let the engine print progress
	Sparse  bool    // approximate, faster variational updates
	Threads uint    // engine worker count, 0 = engine default
}

// Default option values.
const (
	DefaultTrunc   uint    = 100
	DefaultPrior   float64 = 1.0
	DefaultThreads uint    = 0
)

// DefaultConfiguration returns the configuration used when no options are
// given.
func DefaultConfiguration() Configuration {
	return Configuration{
		Trunc:   DefaultTrunc,
		Prior:   DefaultPrior,
		Threads: DefaultThreads,
	}
}

// WeightDistribution is the part of a Dirichlet-family posterior the
// boundary needs.
type WeightDistribution interface {
	// ExpectedLogWeight returns E[log w] for each component.
	ExpectedLogWeight() []float64
}

// GaussianCluster is the part of a Gaussian-Wishart posterior the boundary
// needs.
type GaussianCluster interface {
	Mean() []float64
	Covariance() mat.Matrix
}

// ResultSet is everything an engine returns from one call.
//
//	QY        J matrices, I_j x T
//	QZ        J x I_j matrices, N_ij x K
//	Weights   J class-weight posteriors over T classes
//	Classes   T cluster-weight posteriors over K clusters
//	Clusters  K Gaussian clusters in D dimensions
type ResultSet struct {
	QY       []*mat.Dense
	QZ       [][]*mat.Dense
	Weights  []WeightDistribution
	Classes  []WeightDistribution
	Clusters []GaussianCluster
}

// T returns the number of classes.
func (rs *ResultSet) T() int { return len(rs.Classes) }

// K returns the number of clusters.
func (rs *ResultSet) K() int { return len(rs.Clusters) }

// LogWeights is a WeightDistribution holding copied expected log-weights.
type LogWeights []float64

func (w LogWeights) ExpectedLogWeight() []float64 {
	out := make([]float64, len(w))
	copy(out, w)
	return out
}

// Gaussian is a GaussianCluster holding copied parameters.
type Gaussian struct {
	Mu    []float64
	Sigma *mat.Dense
}

func (g Gaussian) Mean() []float64 {
	out := make([]float64, len(g.Mu))
	copy(out, g.Mu)
	return out
}

func (g Gaussian) Covariance() mat.Matrix {
	if g.Sigma == nil {
		return nil
	}
	return g.Sigma
}
