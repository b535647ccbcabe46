package memsql

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/ardbc/ardbc/internal/driver"
)

// Key layout. Two namespaces share one pebble keyspace, each prefixed so
// bytewise iteration keeps them apart and keeps a table's rows in
// insertion order:
//
//	schema:<table>            -> encoded column name list
//	row:<table>:<rowid zero-padded 20 digits> -> encoded row values
func schemaKey(table string) []byte {
	return []byte("schema:" + table)
}

func rowKeyPrefix(table string) []byte {
	return []byte("row:" + table + ":")
}

func rowKey(table string, rowID uint64) []byte {
	return []byte(fmt.Sprintf("row:%s:%020d", table, rowID))
}

// encodeColumns/decodeColumns persist a table's column name list as a
// NUL-joined string — memsql only ever stores column names, never types,
// since every column is read back as whatever ColumnType the caller's
// Rows.Get call asks for.
func encodeColumns(cols []string) []byte {
	out := make([]byte, 0, 64)
	for i, c := range cols {
		if i > 0 {
			out = append(out, 0)
		}
		out = append(out, c...)
	}
	return out
}

func decodeColumns(b []byte) []string {
	if len(b) == 0 {
		return nil
	}
	var cols []string
	start := 0
	for i, c := range b {
		if c == 0 {
			cols = append(cols, string(b[start:i]))
			start = i + 1
		}
	}
	cols = append(cols, string(b[start:]))
	return cols
}

// encodeRow/decodeRow encode a row's Values as a simple
// tag-length-value sequence: one byte kind, then a payload whose shape
// depends on the kind.
func encodeRow(values []driver.Value) []byte {
	out := make([]byte, 0, 16*len(values))
	for _, v := range values {
		out = append(out, byte(v.Kind()))
		switch v.Kind() {
		case driver.KindNull:
			// no payload
		case driver.KindI64:
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], uint64(v.I64()))
			out = append(out, buf[:]...)
		case driver.KindF64:
			var buf [8]byte
			binary.BigEndian.PutUint64(buf[:], math.Float64bits(v.F64()))
			out = append(out, buf[:]...)
		case driver.KindString:
			out = appendLenPrefixed(out, []byte(v.String()))
		case driver.KindBytes:
			out = appendLenPrefixed(out, v.Bytes())
		}
	}
	return out
}

func decodeRow(b []byte, numCols int) ([]driver.Value, error) {
	values := make([]driver.Value, 0, numCols)
	pos := 0
	for i := 0; i < numCols; i++ {
		if pos >= len(b) {
			return nil, fmt.Errorf("memsql: truncated row at column %d", i)
		}
		kind := driver.ValueKind(b[pos])
		pos++
		switch kind {
		case driver.KindNull:
			values = append(values, driver.NullValue())
		case driver.KindI64:
			if pos+8 > len(b) {
				return nil, fmt.Errorf("memsql: truncated I64 at column %d", i)
			}
			values = append(values, driver.I64Value(int64(binary.BigEndian.Uint64(b[pos:pos+8]))))
			pos += 8
		case driver.KindF64:
			if pos+8 > len(b) {
				return nil, fmt.Errorf("memsql: truncated F64 at column %d", i)
			}
			values = append(values, driver.F64Value(math.Float64frombits(binary.BigEndian.Uint64(b[pos:pos+8]))))
			pos += 8
		case driver.KindString:
			s, n, err := readLenPrefixed(b, pos)
			if err != nil {
				return nil, err
			}
			values = append(values, driver.StringValue(string(s)))
			pos = n
		case driver.KindBytes:
			s, n, err := readLenPrefixed(b, pos)
			if err != nil {
				return nil, err
			}
			cp := make([]byte, len(s))
			copy(cp, s)
			values = append(values, driver.BytesValue(cp))
			pos = n
		default:
			return nil, fmt.Errorf("memsql: unknown value kind %d at column %d", kind, i)
		}
	}
	return values, nil
}

func appendLenPrefixed(out []byte, b []byte) []byte {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	out = append(out, lenBuf[:]...)
	out = append(out, b...)
	return out
}

func readLenPrefixed(b []byte, pos int) ([]byte, int, error) {
	if pos+4 > len(b) {
		return nil, 0, fmt.Errorf("memsql: truncated length prefix")
	}
	n := int(binary.BigEndian.Uint32(b[pos : pos+4]))
	pos += 4
	if pos+n > len(b) {
		return nil, 0, fmt.Errorf("memsql: truncated payload")
	}
	return b[pos : pos+n], pos + n, nil
}
