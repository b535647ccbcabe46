package sqlite3

import "strings"

// declaredColumnType maps a SQLite declared column type (as reported by
// sqlite3_column_decltype, surfaced through
// driver.RowsColumnTypeDatabaseTypeName) to the ardbc Value kind that best
// represents it. Matching is case-insensitive and substring-based, the
// same affinity rule SQLite itself applies when choosing column storage
// class from a declared type name.
func declaredColumnType(decltype string) columnKind {
	t := strings.ToUpper(strings.TrimSpace(decltype))
	switch {
	case t == "":
		return columnString
	case containsAny(t, "INT"):
		return columnI64
	case containsAny(t, "REAL", "DOUBLE", "FLOA"):
		return columnF64
	case containsAny(t, "BLOB"):
		return columnBytes
	case containsAny(t, "CHAR", "CLOB", "TEXT"):
		return columnString
	default:
		return columnString
	}
}

type columnKind uint8

const (
	columnString columnKind = iota
	columnI64
	columnF64
	columnBytes
)

// declaredByteLen reports the fixed storage length ardbc associates with
// a column kind, or nil when the kind has no fixed length.
func declaredByteLen(k columnKind) *uint64 {
	var eight uint64 = 8
	switch k {
	case columnI64, columnF64:
		return &eight
	default:
		return nil
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
