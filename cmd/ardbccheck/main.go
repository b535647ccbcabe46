// Command ardbccheck runs a create/insert/query smoke sequence against a
// registered ardbc driver and reports the resulting state — a tiny
// end-to-end check that exercises the whole stack outside of _test.go.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ardbc/ardbc"
	"github.com/ardbc/ardbc/memsql"
	"github.com/ardbc/ardbc/sqlite3"
)

func main() {
	driverName := flag.String("driver", "sqlite3", "registered driver to check (sqlite3 or memsql)")
	dsn := flag.String("dsn", ":memory:", "connection string passed to the driver")
	flag.Parse()

	if err := run(*driverName, *dsn); err != nil {
		log.Fatalf("ardbccheck: %v", err)
	}
}

func run(driverName, dsn string) error {
	registry := ardbc.NewRegistry()
	if err := registry.RegisterDriver("sqlite3", sqlite3.NewDriver()); err != nil {
		return err
	}
	if err := registry.RegisterDriver("memsql", memsql.NewDriver()); err != nil {
		return err
	}

	db, err := registry.Open(driverName, dsn)
	if err != nil {
		return fmt.Errorf("open %s %s: %w", driverName, dsn, err)
	}

	ctx := context.Background()
	if err := smokeCreateInsertQuery(ctx, db); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "ardbccheck: driver=%s url=%s ok\n", db.Name(), db.URL())
	return nil
}

// smokeCreateInsertQuery creates a table, inserts one row, and reads it
// back through a fresh query. Each statement is closed before the next is
// prepared so its connection returns to the pool and is reused; every
// ":memory:" connection is a separate database.
func smokeCreateInsertQuery(ctx context.Context, db *ardbc.Database) error {
	create, err := db.Prepare(ctx, "CREATE TABLE ardbccheck_t(x INTEGER PRIMARY KEY, y TEXT)")
	if err != nil {
		return fmt.Errorf("prepare create table: %w", err)
	}
	_, err = create.Execute(ctx, nil)
	create.Close()
	if err != nil {
		return fmt.Errorf("execute create table: %w", err)
	}

	insert, err := db.Prepare(ctx, "INSERT INTO ardbccheck_t(x, y) VALUES(?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	res, err := insert.Execute(ctx, []ardbc.Arg{
		{Placeholder: ardbc.ByIndex(1), Value: ardbc.I64Value(1)},
		{Placeholder: ardbc.ByIndex(2), Value: ardbc.StringValue("hello world")},
	})
	insert.Close()
	if err != nil {
		return fmt.Errorf("execute insert: %w", err)
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("insert reported %d rows affected, want 1", res.RowsAffected)
	}

	query, err := db.Prepare(ctx, "SELECT x, y FROM ardbccheck_t")
	if err != nil {
		return fmt.Errorf("prepare select: %w", err)
	}
	defer query.Close()

	rows, err := query.Query(ctx, nil)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns(ctx)
	if err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	if len(cols) != 2 {
		return fmt.Errorf("got %d columns, want 2", len(cols))
	}
	if cols[0].ColumnIndex != 0 || cols[1].ColumnIndex != 1 {
		return fmt.Errorf("got column indexes %d,%d, want 0,1", cols[0].ColumnIndex, cols[1].ColumnIndex)
	}

	has, err := rows.Next(ctx)
	if err != nil {
		return fmt.Errorf("next: %w", err)
	}
	if !has {
		return fmt.Errorf("expected one row, got none")
	}

	x, err := rows.Get(ctx, ardbc.ByIndex(0), ardbc.ColumnI64)
	if err != nil {
		return fmt.Errorf("get column 0: %w", err)
	}
	if x.I64() != 1 {
		return fmt.Errorf("got x=%d, want 1", x.I64())
	}

	y, err := rows.Get(ctx, ardbc.ByIndex(1), ardbc.ColumnString)
	if err != nil {
		return fmt.Errorf("get column 1: %w", err)
	}
	if y.String() != "hello world" {
		return fmt.Errorf("got y=%q, want %q", y.String(), "hello world")
	}

	return nil
}
