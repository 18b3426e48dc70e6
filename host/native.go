package host

import "sort"

// Array is the native numeric (or logical) matrix. Data is row-major.
type Array struct {
	rows, cols int
	data       []float64
	logical    bool
}

// NewMatrix copies row-major data into a new rows x cols numeric matrix.
// It panics if len(data) != rows*cols.
func NewMatrix(rows, cols int, data []float64) *Array {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		panic("host: matrix data does not match dimensions")
	}
	buf := make([]float64, len(data))
	copy(buf, data)
	return &Array{rows: rows, cols: cols, data: buf}
}

// NewMatrixRows builds a matrix from row slices; rows must have equal length.
func NewMatrixRows(rows [][]float64) *Array {
	if len(rows) == 0 {
		return &Array{}
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for _, r := range rows {
		if len(r) != cols {
			panic("host: ragged matrix rows")
		}
		data = append(data, r...)
	}
	return &Array{rows: len(rows), cols: cols, data: data}
}

// Scalar builds a 1x1 numeric matrix.
func Scalar(v float64) *Array {
	return &Array{rows: 1, cols: 1, data: []float64{v}}
}

// Logical builds a 1x1 logical matrix.
func Logical(b bool) *Array {
	v := 0.0
	if b {
		v = 1
	}
	return &Array{rows: 1, cols: 1, data: []float64{v}, logical: true}
}

// Empty is the 0x0 numeric matrix.
func Empty() *Array {
	return &Array{}
}

func (a *Array) Kind() Kind {
	switch {
	case a.rows == 0 || a.cols == 0:
		return KindEmpty
	case a.logical:
		return KindLogical
	default:
		return KindNumeric
	}
}

func (a *Array) Dims() (int, int) { return a.rows, a.cols }

func (a *Array) At(i, j int) float64 {
	if i < 0 || i >= a.rows || j < 0 || j >= a.cols {
		panic("host: index out of range")
	}
	return a.data[i*a.cols+j]
}

// CellArray is the native cell container.
type CellArray struct {
	elems []Value
}

// NewCell builds a cell holding elems in order.
func NewCell(elems ...Value) *CellArray {
	buf := make([]Value, len(elems))
	copy(buf, elems)
	return &CellArray{elems: buf}
}

func (c *CellArray) Kind() Kind        { return KindCell }
func (c *CellArray) Len() int          { return len(c.elems) }
func (c *CellArray) Index(i int) Value { return c.elems[i] }

// Record is the native struct container.
type Record struct {
	names  []string
	fields map[string]Value
}

// NewStruct builds a struct from a field map. Field order is sorted by name.
func NewStruct(fields map[string]Value) *Record {
	r := &Record{fields: make(map[string]Value, len(fields))}
	for k, v := range fields {
		r.names = append(r.names, k)
		r.fields[k] = v
	}
	sort.Strings(r.names)
	return r
}

func (r *Record) Kind() Kind { return KindStruct }

func (r *Record) Fields() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Record) Field(name string) (Value, bool) {
	v, ok := r.fields[name]
	return v, ok
}

// String is the native character array.
type String string

func (s String) Kind() Kind     { return KindText }
func (s String) String() string { return string(s) }

type nativeFactory struct{}

func (nativeFactory) NewMatrix(rows, cols int, data []float64) Value {
	return NewMatrix(rows, cols, data)
}

func (nativeFactory) NewCell(elems []Value) Value {
	return NewCell(elems...)
}

// Native builds native Go host values.
var Native Factory = nativeFactory{}
