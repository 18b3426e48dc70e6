package host

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrixCopiesData(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m := NewMatrix(2, 3, data)
	data[0] = 99

	rows, cols := m.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, KindNumeric, m.Kind())
}

func TestNewMatrixPanicsOnMismatch(t *testing.T) {
	assert.Panics(t, func() { NewMatrix(2, 2, []float64{1, 2, 3}) })
	assert.Panics(t, func() { NewMatrixRows([][]float64{{1, 2}, {3}}) })
}

func TestKinds(t *testing.T) {
	assert.Equal(t, KindEmpty, Empty().Kind())
	assert.Equal(t, KindEmpty, NewMatrix(0, 3, nil).Kind())
	assert.Equal(t, KindLogical, Logical(true).Kind())
	assert.Equal(t, KindNumeric, Scalar(2).Kind())
	assert.Equal(t, KindCell, NewCell().Kind())
	assert.Equal(t, KindStruct, NewStruct(nil).Kind())
	assert.Equal(t, KindText, String("x").Kind())
}

func TestCellAndStruct(t *testing.T) {
	c := NewCell(Scalar(1), String("a"))
	require.Equal(t, 2, c.Len())
	assert.Equal(t, KindText, c.Index(1).Kind())

	s := NewStruct(map[string]Value{"trunc": Scalar(3), "prior": Scalar(0.5)})
	assert.Equal(t, []string{"prior", "trunc"}, s.Fields())
	v, ok := s.Field("trunc")
	require.True(t, ok)
	assert.True(t, IsScalar(v))
	_, ok = s.Field("missing")
	assert.False(t, ok)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "double 4x2", Describe(NewMatrix(4, 2, make([]float64, 8))))
	assert.Equal(t, "logical 1x1", Describe(Logical(false)))
	assert.Equal(t, "cell 1x2", Describe(NewCell(Empty(), Empty())))
	assert.Equal(t, "char", Describe(String("x")))
	assert.Equal(t, "nothing", Describe(nil))
}

func TestNativeFactory(t *testing.T) {
	data := []float64{1, 2}
	v := Native.NewMatrix(1, 2, data)
	data[1] = 7

	m, ok := v.(Matrix)
	require.True(t, ok)
	assert.Equal(t, 2.0, m.At(0, 1))

	c, ok := Native.NewCell([]Value{v}).(Cell)
	require.True(t, ok)
	assert.Equal(t, 1, c.Len())
}
