package memsql

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// memsql understands a minimal subset of SQL — enough to demonstrate a
// synchronous, inline-completing driver: CREATE TABLE, INSERT and
// SELECT * FROM <table>. Anything richer belongs to a real SQL engine,
// which is exactly what this driver is not.
type parsedStmt interface {
	placeholderCount() int
}

type createTableStmt struct {
	table   string
	columns []string
}

func (s *createTableStmt) placeholderCount() int { return 0 }

type insertStmt struct {
	table   string
	columns []string
}

func (s *insertStmt) placeholderCount() int { return len(s.columns) }

type selectStmt struct {
	table string
}

func (s *selectStmt) placeholderCount() int { return 0 }

// parseStatement parses query into one of createTableStmt, insertStmt or
// selectStmt. It is deliberately whitespace- and case-tolerant but not a
// general SQL parser: columns must be comma-separated with no nested
// parentheses, and INSERT values must all be placeholders ('?').
func parseStatement(query string) (parsedStmt, error) {
	q := strings.TrimSpace(query)
	upper := strings.ToUpper(q)

	switch {
	case strings.HasPrefix(upper, "CREATE TABLE"):
		return parseCreateTable(q)
	case strings.HasPrefix(upper, "INSERT INTO"):
		return parseInsert(q)
	case strings.HasPrefix(upper, "SELECT"):
		return parseSelect(q)
	default:
		return nil, errors.Newf("memsql: unsupported statement: %s", query)
	}
}

func parseCreateTable(q string) (*createTableStmt, error) {
	rest := strings.TrimSpace(q[len("CREATE TABLE"):])
	table, colSpec, err := splitNameAndParens(rest)
	if err != nil {
		return nil, err
	}

	var cols []string
	for _, part := range strings.Split(colSpec, ",") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) == 0 {
			continue
		}
		cols = append(cols, fields[0])
	}
	if len(cols) == 0 {
		return nil, errors.Newf("memsql: CREATE TABLE with no columns: %s", q)
	}
	return &createTableStmt{table: table, columns: cols}, nil
}

func parseInsert(q string) (*insertStmt, error) {
	rest := strings.TrimSpace(q[len("INSERT INTO"):])

	valuesIdx := indexUpper(rest, "VALUES")
	if valuesIdx < 0 {
		return nil, errors.Newf("memsql: INSERT without VALUES: %s", q)
	}

	head := strings.TrimSpace(rest[:valuesIdx])
	table, colSpec, err := splitNameAndParens(head)
	if err != nil {
		return nil, err
	}

	var cols []string
	for _, part := range strings.Split(colSpec, ",") {
		cols = append(cols, strings.TrimSpace(part))
	}
	return &insertStmt{table: table, columns: cols}, nil
}

func parseSelect(q string) (*selectStmt, error) {
	fromIdx := indexUpper(q, "FROM")
	if fromIdx < 0 {
		return nil, errors.Newf("memsql: SELECT without FROM: %s", q)
	}
	table := strings.TrimSpace(q[fromIdx+len("FROM"):])
	table = strings.Fields(table)[0]
	return &selectStmt{table: table}, nil
}

// splitNameAndParens splits "name(a, b, c)" into "name" and "a, b, c".
func splitNameAndParens(s string) (name string, inner string, err error) {
	open := strings.IndexByte(s, '(')
	shut := strings.LastIndexByte(s, ')')
	if open < 0 || shut < 0 || shut < open {
		return "", "", errors.Newf("memsql: expected (columns) in: %s", s)
	}
	return strings.TrimSpace(s[:open]), s[open+1 : shut], nil
}

func indexUpper(s, substr string) int {
	return strings.Index(strings.ToUpper(s), substr)
}
