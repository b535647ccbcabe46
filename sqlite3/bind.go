package sqlite3

import (
	sqldriver "database/sql/driver"

	"github.com/ardbc/ardbc/internal/driver"
)

// toNamedValues converts ardbc's Arg list into the database/sql/driver
// wire shape mattn/go-sqlite3's StmtExecContext/StmtQueryContext expect.
// A by-index Placeholder binds by its own one-based ordinal; a by-name
// Placeholder binds by its ordinal position within args instead — named
// placeholders are resolved by-position in this iteration, not by asking
// SQLite to match the name against the compiled statement's own
// :name/@name/$name parameters.
func toNamedValues(args []driver.Arg) []sqldriver.NamedValue {
	out := make([]sqldriver.NamedValue, len(args))
	for i, a := range args {
		ordinal := i + 1
		if !a.Placeholder.IsName() {
			ordinal = int(a.Placeholder.Index())
		}
		out[i] = sqldriver.NamedValue{Ordinal: ordinal, Value: a.Value.Any()}
	}
	return out
}
