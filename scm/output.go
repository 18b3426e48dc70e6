package scm

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/host"
)

// Output holds the six values a cluster call returns, in host form.
type Output struct {
	QY          host.Value // {J}[I_j x T]
	QZ          host.Value // {J}{I_j}[N_ij x K]
	Weights     host.Value // {J}[1 x T]
	Classes     host.Value // {T}[1 x K]
	Means       host.Value // {K}[1 x D]
	Covariances host.Value // {K}[D x D]
}

// Values returns the outputs in call-signature order.
func (o *Output) Values() []host.Value {
	return []host.Value{o.QY, o.QZ, o.Weights, o.Classes, o.Means, o.Covariances}
}

// OutputNames are the conventional names of Values, in the same order.
var OutputNames = []string{"qY", "qZ", "weights", "classes", "means", "covariances"}

// MarshalOutput copies a ResultSet into host containers built by f.
//
// Weight vectors are exp(E[log w]) elementwise. They are not renormalized
// and need not sum to one.
func MarshalOutput(rs *ResultSet, f host.Factory) (*Output, error) {
	if rs == nil {
		return nil, errors.New("no result to marshal")
	}

	qY := make([]host.Value, len(rs.QY))
	for j, m := range rs.QY {
		qY[j] = denseToHost(f, m)
	}

	qZ := make([]host.Value, len(rs.QZ))
	for j, group := range rs.QZ {
		items := make([]host.Value, len(group))
		for i, m := range group {
			items[i] = denseToHost(f, m)
		}
		qZ[j] = f.NewCell(items)
	}

	weights := make([]host.Value, len(rs.Weights))
	for j, w := range rs.Weights {
		weights[j] = expRow(f, w)
	}

	classes := make([]host.Value, len(rs.Classes))
	for t, c := range rs.Classes {
		classes[t] = expRow(f, c)
	}

	means := make([]host.Value, len(rs.Clusters))
	covs := make([]host.Value, len(rs.Clusters))
	for k, c := range rs.Clusters {
		mu := c.Mean()
		means[k] = f.NewMatrix(1, len(mu), mu)
		covs[k] = denseToHost(f, c.Covariance())
	}

	return &Output{
		QY:          f.NewCell(qY),
		QZ:          f.NewCell(qZ),
		Weights:     f.NewCell(weights),
		Classes:     f.NewCell(classes),
		Means:       f.NewCell(means),
		Covariances: f.NewCell(covs),
	}, nil
}

func expRow(f host.Factory, w WeightDistribution) host.Value {
	logw := w.ExpectedLogWeight()
	row := make([]float64, len(logw))
	for i, v := range logw {
		row[i] = math.Exp(v)
	}
	return f.NewMatrix(1, len(row), row)
}

func denseToHost(f host.Factory, m mat.Matrix) host.Value {
	rows, cols := m.Dims()
	data := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data[r*cols+c] = m.At(r, c)
		}
	}
	return f.NewMatrix(rows, cols, data)
}
