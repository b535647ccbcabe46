package ardbc

import (
	"golang.org/x/exp/constraints"

	"github.com/ardbc/ardbc/internal/driver"
)

// Value is the closed set of types that can cross the driver boundary as a
// bound argument or a fetched column: I64, F64, String, Bytes or Null.
// Wider numeric types are narrowed to I64/F64 before they reach here — use
// IntValue/FloatValue to do that narrowing.
type Value = driver.Value

// ValueKind discriminates a Value's payload.
type ValueKind = driver.ValueKind

const (
	KindNull   = driver.KindNull
	KindI64    = driver.KindI64
	KindF64    = driver.KindF64
	KindString = driver.KindString
	KindBytes  = driver.KindBytes
)

// NullValue, I64Value, F64Value, StringValue and BytesValue construct a
// Value of the matching kind.
var (
	NullValue   = driver.NullValue
	I64Value    = driver.I64Value
	F64Value    = driver.F64Value
	StringValue = driver.StringValue
	BytesValue  = driver.BytesValue
)

// IntValue narrows any signed or unsigned integer type to the I64 Value
// the driver boundary carries. Truncation on types wider than 64 bits is
// the caller's responsibility, same as converting to int64 directly.
func IntValue[T constraints.Integer](v T) Value {
	return driver.I64Value(int64(v))
}

// FloatValue narrows any floating-point type to the F64 Value the driver
// boundary carries.
func FloatValue[T constraints.Float](v T) Value {
	return driver.F64Value(float64(v))
}

// ColumnType is a fetch-coercion hint passed to Rows.Get.
type ColumnType = driver.ColumnType

const (
	ColumnI64    = driver.ColumnI64
	ColumnF64    = driver.ColumnF64
	ColumnString = driver.ColumnString
	ColumnBytes  = driver.ColumnBytes
	ColumnNull   = driver.ColumnNull
)

// Placeholder identifies a bind-parameter slot, by one-based ordinal index
// or by name.
type Placeholder = driver.Placeholder

// ByIndex and ByName construct a Placeholder addressed by position or by
// name, respectively.
var (
	ByIndex = driver.ByIndex
	ByName  = driver.ByName
)

// Arg pairs a Placeholder with the Value bound to it.
type Arg = driver.Arg

// ColumnMetaData describes one column of a Rows result.
type ColumnMetaData = driver.ColumnMetaData

// ExecuteResult reports the outcome of a DML statement.
type ExecuteResult = driver.ExecuteResult
