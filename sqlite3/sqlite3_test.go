package sqlite3_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardbc/ardbc"
	"github.com/ardbc/ardbc/sqlite3"
)

func openTestDB(t *testing.T) *ardbc.Database {
	t.Helper()
	registry := ardbc.NewRegistry()
	require.NoError(t, registry.RegisterDriver("sqlite3", sqlite3.NewDriver()))
	db, err := registry.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	return db
}

func TestCreateInsertQuery(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	create, err := db.Prepare(ctx, "CREATE TABLE t(x INTEGER PRIMARY KEY, y TEXT)")
	require.NoError(t, err)
	_, err = create.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, create.Close())

	insert, err := db.Prepare(ctx, "INSERT INTO t(x, y) VALUES(?, ?)")
	require.NoError(t, err)
	res, err := insert.Execute(ctx, []ardbc.Arg{
		{Placeholder: ardbc.ByIndex(1), Value: ardbc.I64Value(1)},
		{Placeholder: ardbc.ByIndex(2), Value: ardbc.StringValue("hello")},
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, res.RowsAffected)
	require.NoError(t, insert.Close())

	query, err := db.Prepare(ctx, "SELECT x, y FROM t")
	require.NoError(t, err)
	defer query.Close()

	rows, err := query.Query(ctx, nil)
	require.NoError(t, err)
	defer rows.Close()

	cols, err := rows.Columns(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.EqualValues(t, 0, cols[0].ColumnIndex)
	require.Equal(t, "x", cols[0].ColumnName)
	require.EqualValues(t, 1, cols[1].ColumnIndex)
	require.Equal(t, "y", cols[1].ColumnName)

	hasRow, err := rows.Next(ctx)
	require.NoError(t, err)
	require.True(t, hasRow)

	x, err := rows.Get(ctx, ardbc.ByIndex(0), ardbc.ColumnI64)
	require.NoError(t, err)
	require.Equal(t, int64(1), x.I64())

	y, err := rows.Get(ctx, ardbc.ByIndex(1), ardbc.ColumnString)
	require.NoError(t, err)
	require.Equal(t, "hello", y.String())

	hasRow, err = rows.Next(ctx)
	require.NoError(t, err)
	require.False(t, hasRow)
}

func TestTransactionCommitMakesRowsVisible(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	create, err := db.Prepare(ctx, "CREATE TABLE t(x INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = create.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, create.Close())

	tx, err := db.Begin(ctx)
	require.NoError(t, err)

	insert, err := tx.Prepare(ctx, "INSERT INTO t(x) VALUES(1)")
	require.NoError(t, err)
	_, err = insert.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, insert.Close())

	require.NoError(t, tx.Commit(ctx))

	count, err := db.Prepare(ctx, "SELECT x FROM t")
	require.NoError(t, err)
	defer count.Close()
	rows, err := count.Query(ctx, nil)
	require.NoError(t, err)
	defer rows.Close()

	hasRow, err := rows.Next(ctx)
	require.NoError(t, err)
	require.True(t, hasRow)
}

func TestTransactionRollbackHidesRows(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	create, err := db.Prepare(ctx, "CREATE TABLE t(x INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = create.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, create.Close())

	tx, err := db.Begin(ctx)
	require.NoError(t, err)

	insert, err := tx.Prepare(ctx, "INSERT INTO t(x) VALUES(1)")
	require.NoError(t, err)
	_, err = insert.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, insert.Close())

	require.NoError(t, tx.Rollback(ctx))

	query, err := db.Prepare(ctx, "SELECT x FROM t")
	require.NoError(t, err)
	defer query.Close()
	rows, err := query.Query(ctx, nil)
	require.NoError(t, err)
	defer rows.Close()

	hasRow, err := rows.Next(ctx)
	require.NoError(t, err)
	require.False(t, hasRow)
}

func TestTransactionCloseImplicitlyRollsBack(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	create, err := db.Prepare(ctx, "CREATE TABLE t(x INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = create.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, create.Close())

	tx, err := db.Begin(ctx)
	require.NoError(t, err)

	insert, err := tx.Prepare(ctx, "INSERT INTO t(x) VALUES(1)")
	require.NoError(t, err)
	_, err = insert.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, insert.Close())

	require.NoError(t, tx.Close())

	query, err := db.Prepare(ctx, "SELECT x FROM t")
	require.NoError(t, err)
	defer query.Close()
	rows, err := query.Query(ctx, nil)
	require.NoError(t, err)
	defer rows.Close()

	hasRow, err := rows.Next(ctx)
	require.NoError(t, err)
	require.False(t, hasRow)
}

func TestRegistryDuplicateDriver(t *testing.T) {
	registry := ardbc.NewRegistry()
	require.NoError(t, registry.RegisterDriver("sqlite3", sqlite3.NewDriver()))
	err := registry.RegisterDriver("sqlite3", sqlite3.NewDriver())
	require.True(t, ardbc.IsDuplicateDriver(err))
}

func TestRegistryUnknownDriver(t *testing.T) {
	registry := ardbc.NewRegistry()
	_, err := registry.Open("nope", ":memory:")
	require.True(t, ardbc.IsUnknownDriver(err))
}

func TestCursorNotPositionedBeforeNext(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	create, err := db.Prepare(ctx, "CREATE TABLE t(x INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = create.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, create.Close())

	query, err := db.Prepare(ctx, "SELECT x FROM t")
	require.NoError(t, err)
	defer query.Close()
	rows, err := query.Query(ctx, nil)
	require.NoError(t, err)
	defer rows.Close()

	_, err = rows.Get(ctx, ardbc.ByIndex(0), ardbc.ColumnI64)
	require.True(t, ardbc.IsCursorNotPositioned(err))
}

func TestStatementOutOfRangeColumn(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	create, err := db.Prepare(ctx, "CREATE TABLE t(x INTEGER PRIMARY KEY)")
	require.NoError(t, err)
	_, err = create.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, create.Close())

	insert, err := db.Prepare(ctx, "INSERT INTO t(x) VALUES(1)")
	require.NoError(t, err)
	_, err = insert.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, insert.Close())

	query, err := db.Prepare(ctx, "SELECT x FROM t")
	require.NoError(t, err)
	defer query.Close()
	rows, err := query.Query(ctx, nil)
	require.NoError(t, err)
	defer rows.Close()

	hasRow, err := rows.Next(ctx)
	require.NoError(t, err)
	require.True(t, hasRow)

	_, err = rows.Get(ctx, ardbc.ByIndex(99), ardbc.ColumnI64)
	require.True(t, ardbc.IsOutOfRange(err))
}

func TestConnectionPoolReusesClosedStatementConnection(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	for i := 0; i < 3; i++ {
		stmt, err := db.Prepare(ctx, "SELECT 1")
		require.NoError(t, err)
		_, err = stmt.Query(ctx, nil)
		require.NoError(t, err)
		require.NoError(t, stmt.Close())
	}
}
