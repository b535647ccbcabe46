package memsql

import (
	"context"
	"strconv"

	"github.com/ardbc/ardbc"
	"github.com/ardbc/ardbc/internal/driver"
)

// Rows adapts a fully materialized scan result to internal/driver.Rows.
// memsql has no native cursor to stream from incrementally, so Query
// already read every matching row into memory before this is returned —
// acceptable for a toy table store, not something a real engine would
// do for an unbounded result set.
type Rows struct {
	cols    []driver.ColumnMetaData
	results [][]driver.Value
	idx     int
}

// Columns returns the scanned table's column metadata.
func (r *Rows) Columns(_ context.Context) ([]driver.ColumnMetaData, error) {
	return r.cols, nil
}

// Next advances to the next materialized row.
func (r *Rows) Next(_ context.Context) (bool, error) {
	if r.idx+1 >= len(r.results) {
		r.idx = len(r.results)
		return false, nil
	}
	r.idx++
	return true, nil
}

// Get extracts the value at the zero-based column position pos, coerced
// toward columnType.
func (r *Rows) Get(_ context.Context, pos driver.Placeholder, columnType driver.ColumnType) (driver.Value, error) {
	if r.idx < 0 || r.idx >= len(r.results) {
		return driver.Value{}, &ardbc.CursorNotPositionedError{}
	}
	idx := pos.Index()
	row := r.results[r.idx]
	if idx >= uint64(len(row)) {
		return driver.Value{}, &ardbc.OutOfRangeError{Index: idx}
	}
	return coerceMemsql(row[idx], columnType)
}

// Close releases no native resource — memsql's Query already consumed its
// pebble iterator before returning.
func (r *Rows) Close() error {
	return nil
}

func coerceMemsql(v driver.Value, want driver.ColumnType) (driver.Value, error) {
	if v.IsNull() {
		return driver.NullValue(), nil
	}
	switch want {
	case driver.ColumnI64:
		if v.Kind() == driver.KindF64 {
			return driver.I64Value(int64(v.F64())), nil
		}
		if v.Kind() == driver.KindString {
			n, err := strconv.ParseInt(v.String(), 10, 64)
			if err != nil {
				return driver.Value{}, &ardbc.BindFailureError{Placeholder: "<column>", Reason: err.Error()}
			}
			return driver.I64Value(n), nil
		}
		return driver.I64Value(v.I64()), nil
	case driver.ColumnF64:
		if v.Kind() == driver.KindI64 {
			return driver.F64Value(float64(v.I64())), nil
		}
		if v.Kind() == driver.KindString {
			f, err := strconv.ParseFloat(v.String(), 64)
			if err != nil {
				return driver.Value{}, &ardbc.BindFailureError{Placeholder: "<column>", Reason: err.Error()}
			}
			return driver.F64Value(f), nil
		}
		return driver.F64Value(v.F64()), nil
	case driver.ColumnBytes:
		if v.Kind() == driver.KindString {
			return driver.BytesValue([]byte(v.String())), nil
		}
		return driver.BytesValue(v.Bytes()), nil
	case driver.ColumnNull:
		return driver.NullValue(), nil
	default:
		return driver.StringValue(v.String()), nil
	}
}
