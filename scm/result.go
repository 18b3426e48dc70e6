package scm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/teranos/scm/errors"
)

// Validate checks that the result's index spaces agree with each other and
// with the input: J groups, I_j items per group, N_ij rows per item, T
// classes, K clusters, D dimensions.
func (rs *ResultSet) Validate(x GroupedMatrixSet) error {
	J, T, K, D := x.Groups(), rs.T(), rs.K(), x.Dims()

	if len(rs.QY) != J {
		return errors.Newf("qY has %d groups, input has %d", len(rs.QY), J)
	}
	if len(rs.QZ) != J {
		return errors.Newf("qZ has %d groups, input has %d", len(rs.QZ), J)
	}
	if len(rs.Weights) != J {
		return errors.Newf("weights has %d groups, input has %d", len(rs.Weights), J)
	}

	for j := 0; j < J; j++ {
		if rs.QY[j] == nil {
			return errors.Newf("qY{%d} is missing", j+1)
		}
		if r, c := rs.QY[j].Dims(); r != x.Items(j) || c != T {
			return errors.Newf("qY{%d} is %dx%d, expected %dx%d", j+1, r, c, x.Items(j), T)
		}
		if len(rs.QZ[j]) != x.Items(j) {
			return errors.Newf("qZ{%d} has %d items, input has %d", j+1, len(rs.QZ[j]), x.Items(j))
		}
		for i, qz := range rs.QZ[j] {
			if qz == nil {
				return errors.Newf("qZ{%d}{%d} is missing", j+1, i+1)
			}
			n, _ := x[j][i].Dims()
			if r, c := qz.Dims(); r != n || c != K {
				return errors.Newf("qZ{%d}{%d} is %dx%d, expected %dx%d", j+1, i+1, r, c, n, K)
			}
		}
		if rs.Weights[j] == nil {
			return errors.Newf("weights{%d} is missing", j+1)
		}
		if n := len(rs.Weights[j].ExpectedLogWeight()); n != T {
			return errors.Newf("weights{%d} has %d entries, expected %d", j+1, n, T)
		}
	}

	for t, class := range rs.Classes {
		if class == nil {
			return errors.Newf("classes{%d} is missing", t+1)
		}
		if n := len(class.ExpectedLogWeight()); n != K {
			return errors.Newf("classes{%d} has %d entries, expected %d", t+1, n, K)
		}
	}

	for k, cluster := range rs.Clusters {
		if cluster == nil {
			return errors.Newf("clusters{%d} is missing", k+1)
		}
		if n := len(cluster.Mean()); n != D {
			return errors.Newf("clusters{%d} mean has %d entries, expected %d", k+1, n, D)
		}
		cov := cluster.Covariance()
		if d, ok := cov.(*mat.Dense); cov == nil || (ok && d == nil) {
			return errors.Newf("clusters{%d} covariance is missing", k+1)
		}
		if r, c := cov.Dims(); r != D || c != D {
			return errors.Newf("clusters{%d} covariance is %dx%d, expected %dx%d", k+1, r, c, D, D)
		}
	}

	return nil
}
