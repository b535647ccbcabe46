package main

import "testing"

func TestRunSqlite3(t *testing.T) {
	if err := run("sqlite3", ":memory:"); err != nil {
		t.Fatal(err)
	}
}

func TestRunMemsql(t *testing.T) {
	if err := run("memsql", ":memory:"); err != nil {
		t.Fatal(err)
	}
}

func TestRunUnknownDriver(t *testing.T) {
	if err := run("nope", ":memory:"); err == nil {
		t.Fatal("expected an error for an unregistered driver")
	}
}
