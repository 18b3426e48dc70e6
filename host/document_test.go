package host

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDocument_Lists(t *testing.T) {
	tests := []struct {
		name     string
		doc      interface{}
		kind     Kind
		rows     int
		cols     int
		cellSize int
	}{
		{name: "flat numbers are a row vector", doc: []interface{}{1.0, 2.0, 3.0}, kind: KindNumeric, rows: 1, cols: 3},
		{name: "rows are a matrix", doc: []interface{}{[]interface{}{1, 2}, []interface{}{3, 4}, []interface{}{5, 6}}, kind: KindNumeric, rows: 3, cols: 2},
		{name: "flat booleans are logical", doc: []interface{}{true, false}, kind: KindLogical, rows: 1, cols: 2},
		{name: "ragged rows are a cell", doc: []interface{}{[]interface{}{1}, []interface{}{1, 2}}, kind: KindCell, cellSize: 2},
		{name: "nested matrices are a cell", doc: []interface{}{[]interface{}{[]interface{}{1, 2}}}, kind: KindCell, cellSize: 1},
		{name: "empty list is empty", doc: []interface{}{}, kind: KindEmpty},
		{name: "typed go slices", doc: [][]float64{{1, 2}, {3, 4}}, kind: KindNumeric, rows: 2, cols: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := FromDocument(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			if m, ok := v.(Matrix); ok && tt.kind != KindEmpty {
				r, c := m.Dims()
				assert.Equal(t, tt.rows, r)
				assert.Equal(t, tt.cols, c)
			}
			if c, ok := v.(Cell); ok {
				assert.Equal(t, tt.cellSize, c.Len())
			}
		})
	}
}

func TestFromDocument_Scalars(t *testing.T) {
	v, err := FromDocument(int64(5))
	require.NoError(t, err)
	assert.Equal(t, 5.0, v.(Matrix).At(0, 0))

	v, err = FromDocument(json.Number("0.25"))
	require.NoError(t, err)
	assert.Equal(t, 0.25, v.(Matrix).At(0, 0))

	v, err = FromDocument(true)
	require.NoError(t, err)
	assert.Equal(t, KindLogical, v.Kind())

	v, err = FromDocument("abc")
	require.NoError(t, err)
	assert.Equal(t, KindText, v.Kind())

	v, err = FromDocument(nil)
	require.NoError(t, err)
	assert.Equal(t, KindEmpty, v.Kind())
}

func TestFromDocument_Struct(t *testing.T) {
	doc := map[string]interface{}{
		"trunc":   10,
		"verbose": true,
		"nested":  map[interface{}]interface{}{"k": 1.5},
	}

	v, err := FromDocument(doc)
	require.NoError(t, err)
	s, ok := v.(Struct)
	require.True(t, ok)
	assert.Equal(t, []string{"nested", "trunc", "verbose"}, s.Fields())

	nested, ok := s.Field("nested")
	require.True(t, ok)
	assert.Equal(t, KindStruct, nested.Kind())
}

func TestFromDocument_Unsupported(t *testing.T) {
	_, err := FromDocument(map[string]interface{}{"x": struct{}{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "$.x")
}

func TestToDocument_RoundTrip(t *testing.T) {
	x := NewCell(
		NewCell(NewMatrixRows([][]float64{{1, 2}, {3, 4}, {5, 6}})),
		NewCell(NewMatrixRows([][]float64{{7, 8}}), NewMatrixRows([][]float64{{9, 10}, {11, 12}})),
	)

	doc := ToDocument(x)
	back, err := FromDocument(doc)
	require.NoError(t, err)

	outer := back.(Cell)
	require.Equal(t, 2, outer.Len())
	g1 := outer.Index(1).(Cell)
	require.Equal(t, 2, g1.Len())

	m := g1.Index(1).(Matrix)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 11.0, m.At(1, 0))

	single := g1.Index(0).(Matrix)
	r, c = single.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 2, c)
}

func TestToDocument_Logical(t *testing.T) {
	assert.Equal(t, true, ToDocument(Logical(true)))
	assert.Equal(t, [][]float64{{2}}, ToDocument(Scalar(2)))
	assert.Equal(t, map[string]interface{}{"a": "b"}, ToDocument(NewStruct(map[string]Value{"a": String("b")})))
}
