// Package host models the caller's container types as a small set of
// capabilities: enumerate a cell, read a matrix's shape and elements, look
// up a struct field. The adapter never binds to a concrete host runtime;
// each target host supplies values that satisfy these interfaces and a
// Factory that builds them.
//
// Two hosts ship with the package:
//   - Native Go values (NewMatrix, NewCell, NewStruct, Scalar, Logical)
//   - Decoded documents (FromDocument over JSON, YAML or TOML trees)
package host

import "fmt"

// Kind identifies the host-level class of a value.
type Kind int

const (
	KindEmpty Kind = iota
	KindNumeric
	KindLogical
	KindText
	KindCell
	KindStruct
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindNumeric:
		return "double"
	case KindLogical:
		return "logical"
	case KindText:
		return "char"
	case KindCell:
		return "cell"
	case KindStruct:
		return "struct"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is any host container.
type Value interface {
	Kind() Kind
}

// Matrix is a two-dimensional numeric or logical array.
type Matrix interface {
	Value
	Dims() (rows, cols int)
	At(i, j int) float64
}

// Cell is an ordered container of values.
type Cell interface {
	Value
	Len() int
	Index(i int) Value
}

// Struct is a keyed record.
type Struct interface {
	Value
	Fields() []string
	Field(name string) (Value, bool)
}

// Text is a character array.
type Text interface {
	Value
	String() string
}

// Factory builds host values. Implementations must copy data passed in.
type Factory interface {
	// NewMatrix builds a rows x cols numeric matrix from row-major data.
	NewMatrix(rows, cols int, data []float64) Value
	// NewCell builds a 1 x len(elems) cell.
	NewCell(elems []Value) Value
}

// Describe returns a short human-readable description such as "double 4x2"
// or "cell 1x3", used in error messages.
func Describe(v Value) string {
	switch t := v.(type) {
	case nil:
		return "nothing"
	case Matrix:
		r, c := t.Dims()
		return fmt.Sprintf("%s %dx%d", t.Kind(), r, c)
	case Cell:
		return fmt.Sprintf("cell 1x%d", t.Len())
	case Struct:
		return fmt.Sprintf("struct with %d fields", len(t.Fields()))
	default:
		return v.Kind().String()
	}
}

// IsScalar reports whether v is a 1x1 numeric or logical matrix.
func IsScalar(v Value) bool {
	m, ok := v.(Matrix)
	if !ok {
		return false
	}
	r, c := m.Dims()
	return r == 1 && c == 1
}
