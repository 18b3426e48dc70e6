package scm

import (
	"gonum.org/v1/gonum/mat"

	"github.com/teranos/scm/errors"
	"github.com/teranos/scm/host"
)

// MarshalInput deep-copies the caller's {J}{I_j}[N_ij x D] nested cells into
// a GroupedMatrixSet. Positions in error messages are 1-based, the way the
// host shows them.
func MarshalInput(x host.Value) (GroupedMatrixSet, error) {
	if x == nil {
		return nil, errors.WithHint(
			errors.NewInputShapef("need at least some input data, X"),
			"pass X as a cell array of cell arrays of observation matrices")
	}

	// An empty matrix is how documents spell an empty container.
	if x.Kind() == host.KindEmpty {
		return nil, errors.NewInputShapef("X has no groups")
	}
	outer, ok := x.(host.Cell)
	if !ok {
		return nil, errors.NewInputShapef("X must be a cell array of groups, got %s", host.Describe(x))
	}
	if outer.Len() == 0 {
		return nil, errors.NewInputShapef("X has no groups")
	}

	set := make(GroupedMatrixSet, outer.Len())
	dims := -1
	for j := 0; j < outer.Len(); j++ {
		if v := outer.Index(j); v != nil && v.Kind() == host.KindEmpty {
			return nil, errors.NewInputShapef("X{%d} has no items", j+1)
		}
		group, ok := outer.Index(j).(host.Cell)
		if !ok {
			return nil, errors.NewInputShapef("X{%d} must be a cell array of items, got %s",
				j+1, host.Describe(outer.Index(j)))
		}
		if group.Len() == 0 {
			return nil, errors.NewInputShapef("X{%d} has no items", j+1)
		}

		set[j] = make([]*mat.Dense, group.Len())
		for i := 0; i < group.Len(); i++ {
			m, err := copyMatrix(group.Index(i), j, i)
			if err != nil {
				return nil, err
			}
			_, d := m.Dims()
			if dims < 0 {
				dims = d
			} else if d != dims {
				return nil, errors.WithHint(
					errors.NewInputShapef("X{%d}{%d} has %d columns, expected %d", j+1, i+1, d, dims),
					"every observation matrix must have the same dimensionality D")
			}
			set[j][i] = m
		}
	}

	return set, nil
}

func copyMatrix(v host.Value, j, i int) (*mat.Dense, error) {
	m, ok := v.(host.Matrix)
	if !ok || v.Kind() != host.KindNumeric {
		if ok && v.Kind() == host.KindEmpty {
			return nil, errors.NewInputShapef("X{%d}{%d} is empty", j+1, i+1)
		}
		return nil, errors.NewInputShapef("X{%d}{%d} must be a numeric matrix, got %s",
			j+1, i+1, host.Describe(v))
	}

	rows, cols := m.Dims()
	data := make([]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			data[r*cols+c] = m.At(r, c)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}
