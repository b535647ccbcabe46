package sqlite3

import (
	"fmt"
	"strconv"

	"github.com/ardbc/ardbc"
	"github.com/ardbc/ardbc/internal/driver"
)

// coerce converts a raw value handed back by mattn/go-sqlite3 (int64,
// float64, bool, []byte, string, time.Time or nil) into the Value kind
// requested by want. A nil raw value always yields NullValue,
// independent of want.
func coerce(raw interface{}, want driver.ColumnType) (driver.Value, error) {
	if raw == nil {
		return driver.NullValue(), nil
	}

	switch want {
	case driver.ColumnI64:
		return coerceI64(raw)
	case driver.ColumnF64:
		return coerceF64(raw)
	case driver.ColumnBytes:
		return coerceBytes(raw)
	case driver.ColumnNull:
		return driver.NullValue(), nil
	default:
		return driver.StringValue(fmt.Sprint(raw)), nil
	}
}

func coerceI64(raw interface{}) (driver.Value, error) {
	switch v := raw.(type) {
	case int64:
		return driver.I64Value(v), nil
	case float64:
		return driver.I64Value(int64(v)), nil
	case bool:
		if v {
			return driver.I64Value(1), nil
		}
		return driver.I64Value(0), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return driver.Value{}, &ardbc.BindFailureError{Placeholder: "<column>", Reason: err.Error()}
		}
		return driver.I64Value(n), nil
	case []byte:
		n, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return driver.Value{}, &ardbc.BindFailureError{Placeholder: "<column>", Reason: err.Error()}
		}
		return driver.I64Value(n), nil
	default:
		return driver.Value{}, &ardbc.BindFailureError{Placeholder: "<column>", Reason: fmt.Sprintf("cannot coerce %T to I64", raw)}
	}
}

func coerceF64(raw interface{}) (driver.Value, error) {
	switch v := raw.(type) {
	case float64:
		return driver.F64Value(v), nil
	case int64:
		return driver.F64Value(float64(v)), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return driver.Value{}, &ardbc.BindFailureError{Placeholder: "<column>", Reason: err.Error()}
		}
		return driver.F64Value(f), nil
	case []byte:
		f, err := strconv.ParseFloat(string(v), 64)
		if err != nil {
			return driver.Value{}, &ardbc.BindFailureError{Placeholder: "<column>", Reason: err.Error()}
		}
		return driver.F64Value(f), nil
	default:
		return driver.Value{}, &ardbc.BindFailureError{Placeholder: "<column>", Reason: fmt.Sprintf("cannot coerce %T to F64", raw)}
	}
}

func coerceBytes(raw interface{}) (driver.Value, error) {
	switch v := raw.(type) {
	case []byte:
		return driver.BytesValue(v), nil
	case string:
		return driver.BytesValue([]byte(v)), nil
	default:
		return driver.BytesValue([]byte(fmt.Sprint(v))), nil
	}
}
