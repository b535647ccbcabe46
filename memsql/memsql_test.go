package memsql_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ardbc/ardbc"
	"github.com/ardbc/ardbc/memsql"
)

func openTestDB(t *testing.T) *ardbc.Database {
	t.Helper()
	registry := ardbc.NewRegistry()
	require.NoError(t, registry.RegisterDriver("memsql", memsql.NewDriver()))
	db, err := registry.Open("memsql", ":memory:")
	require.NoError(t, err)
	return db
}

func TestCreateInsertSelect(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	create, err := db.Prepare(ctx, "CREATE TABLE t(x, y)")
	require.NoError(t, err)
	_, err = create.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, create.Close())

	insert, err := db.Prepare(ctx, "INSERT INTO t(x, y) VALUES(?, ?)")
	require.NoError(t, err)
	res, err := insert.Execute(ctx, []ardbc.Arg{
		{Placeholder: ardbc.ByIndex(1), Value: ardbc.I64Value(7)},
		{Placeholder: ardbc.ByIndex(2), Value: ardbc.StringValue("world")},
	})
	require.NoError(t, err)
	require.EqualValues(t, 1, res.RowsAffected)
	require.NoError(t, insert.Close())

	query, err := db.Prepare(ctx, "SELECT * FROM t")
	require.NoError(t, err)
	defer query.Close()
	rows, err := query.Query(ctx, nil)
	require.NoError(t, err)
	defer rows.Close()

	cols, err := rows.Columns(ctx)
	require.NoError(t, err)
	require.Len(t, cols, 2)
	require.EqualValues(t, 0, cols[0].ColumnIndex)
	require.EqualValues(t, 1, cols[1].ColumnIndex)

	hasRow, err := rows.Next(ctx)
	require.NoError(t, err)
	require.True(t, hasRow)

	x, err := rows.Get(ctx, ardbc.ByIndex(0), ardbc.ColumnI64)
	require.NoError(t, err)
	require.Equal(t, int64(7), x.I64())

	y, err := rows.Get(ctx, ardbc.ByIndex(1), ardbc.ColumnString)
	require.NoError(t, err)
	require.Equal(t, "world", y.String())

	hasRow, err = rows.Next(ctx)
	require.NoError(t, err)
	require.False(t, hasRow)
}

func TestTransactionRollbackDiscardsInsert(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	create, err := db.Prepare(ctx, "CREATE TABLE t(x)")
	require.NoError(t, err)
	_, err = create.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, create.Close())

	tx, err := db.Begin(ctx)
	require.NoError(t, err)

	insert, err := tx.Prepare(ctx, "INSERT INTO t(x) VALUES(?)")
	require.NoError(t, err)
	_, err = insert.Execute(ctx, []ardbc.Arg{{Placeholder: ardbc.ByIndex(1), Value: ardbc.I64Value(1)}})
	require.NoError(t, err)
	require.NoError(t, insert.Close())

	require.NoError(t, tx.Rollback(ctx))

	query, err := db.Prepare(ctx, "SELECT * FROM t")
	require.NoError(t, err)
	defer query.Close()
	rows, err := query.Query(ctx, nil)
	require.NoError(t, err)
	defer rows.Close()

	hasRow, err := rows.Next(ctx)
	require.NoError(t, err)
	require.False(t, hasRow)
}

func TestTransactionCommitPersistsInsert(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)

	create, err := db.Prepare(ctx, "CREATE TABLE t(x)")
	require.NoError(t, err)
	_, err = create.Execute(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, create.Close())

	tx, err := db.Begin(ctx)
	require.NoError(t, err)

	insert, err := tx.Prepare(ctx, "INSERT INTO t(x) VALUES(?)")
	require.NoError(t, err)
	_, err = insert.Execute(ctx, []ardbc.Arg{{Placeholder: ardbc.ByIndex(1), Value: ardbc.I64Value(42)}})
	require.NoError(t, err)
	require.NoError(t, insert.Close())

	require.NoError(t, tx.Commit(ctx))

	query, err := db.Prepare(ctx, "SELECT * FROM t")
	require.NoError(t, err)
	defer query.Close()
	rows, err := query.Query(ctx, nil)
	require.NoError(t, err)
	defer rows.Close()

	hasRow, err := rows.Next(ctx)
	require.NoError(t, err)
	require.True(t, hasRow)

	x, err := rows.Get(ctx, ardbc.ByIndex(0), ardbc.ColumnI64)
	require.NoError(t, err)
	require.Equal(t, int64(42), x.I64())
}
