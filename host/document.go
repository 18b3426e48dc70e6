package host

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"github.com/teranos/scm/errors"
)

// FromDocument converts a decoded document tree (as produced by
// encoding/json, yaml.v3 or BurntSushi/toml into interface{}) into host
// values.
//
// Lists are read the way a numeric environment prints them:
//   - a flat list of numbers (or booleans) is a 1xn row vector
//   - a list of equal-length number lists is a matrix, one list per row
//   - anything else is a cell
//
// Maps become structs, strings become char arrays, null becomes [].
func FromDocument(doc interface{}) (Value, error) {
	return fromDocument(doc, "$")
}

func fromDocument(doc interface{}, path string) (Value, error) {
	switch t := doc.(type) {
	case nil:
		return Empty(), nil
	case Value:
		return t, nil
	case bool:
		return Logical(t), nil
	case string:
		return String(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, errors.Wrapf(err, "%s: invalid number %q", path, t.String())
		}
		return Scalar(f), nil
	case map[string]interface{}:
		fields := make(map[string]Value, len(t))
		for k, v := range t {
			fv, err := fromDocument(v, path+"."+k)
			if err != nil {
				return nil, err
			}
			fields[k] = fv
		}
		return NewStruct(fields), nil
	case map[interface{}]interface{}:
		conv := make(map[string]interface{}, len(t))
		for k, v := range t {
			conv[fmt.Sprint(k)] = v
		}
		return fromDocument(conv, path)
	}

	if f, ok := toFloat(doc); ok {
		return Scalar(f), nil
	}

	rv := reflect.ValueOf(doc)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		list := make([]interface{}, rv.Len())
		for i := range list {
			list[i] = rv.Index(i).Interface()
		}
		return fromList(list, path)
	}
	if rv.Kind() == reflect.Map {
		conv := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			conv[fmt.Sprint(iter.Key().Interface())] = iter.Value().Interface()
		}
		return fromDocument(conv, path)
	}

	return nil, errors.Newf("%s: unsupported document value of type %T", path, doc)
}

func fromList(list []interface{}, path string) (Value, error) {
	if len(list) == 0 {
		return Empty(), nil
	}

	if row, logical, ok := numericRow(list); ok {
		a := NewMatrix(1, len(row), row)
		a.logical = logical
		return a, nil
	}

	if rows, ok := numericRows(list); ok {
		return NewMatrixRows(rows), nil
	}

	elems := make([]Value, len(list))
	for i, item := range list {
		v, err := fromDocument(item, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		elems[i] = v
	}
	return NewCell(elems...), nil
}

// numericRow reports whether every element is a number or boolean.
func numericRow(list []interface{}) ([]float64, bool, bool) {
	row := make([]float64, len(list))
	allBool := true
	for i, item := range list {
		if b, ok := item.(bool); ok {
			if b {
				row[i] = 1
			}
			continue
		}
		allBool = false
		f, ok := toFloat(item)
		if !ok {
			return nil, false, false
		}
		row[i] = f
	}
	return row, allBool, true
}

// numericRows reports whether list is a non-ragged list of numeric rows.
func numericRows(list []interface{}) ([][]float64, bool) {
	rows := make([][]float64, len(list))
	cols := -1
	for i, item := range list {
		inner, ok := asList(item)
		if !ok || len(inner) == 0 {
			return nil, false
		}
		row, _, ok := numericRow(inner)
		if !ok {
			return nil, false
		}
		if cols >= 0 && len(row) != cols {
			return nil, false
		}
		cols = len(row)
		rows[i] = row
	}
	return rows, true
}

func asList(v interface{}) ([]interface{}, bool) {
	if l, ok := v.([]interface{}); ok {
		return l, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	out := make([]interface{}, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// ToDocument converts host values into plain trees suitable for encoding.
// Matrices always become lists of rows so their shape survives a round
// trip; a logical scalar becomes a bool.
func ToDocument(v Value) interface{} {
	switch t := v.(type) {
	case nil:
		return nil
	case Text:
		return t.String()
	case Cell:
		out := make([]interface{}, t.Len())
		for i := range out {
			out[i] = ToDocument(t.Index(i))
		}
		return out
	case Struct:
		names := t.Fields()
		sort.Strings(names)
		out := make(map[string]interface{}, len(names))
		for _, name := range names {
			fv, _ := t.Field(name)
			out[name] = ToDocument(fv)
		}
		return out
	case Matrix:
		rows, cols := t.Dims()
		if t.Kind() == KindLogical && rows == 1 && cols == 1 {
			return t.At(0, 0) != 0
		}
		out := make([][]float64, rows)
		for i := range out {
			out[i] = make([]float64, cols)
			for j := range out[i] {
				out[i][j] = t.At(i, j)
			}
		}
		return out
	default:
		return nil
	}
}
