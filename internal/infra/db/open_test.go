package db_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"itemvault/internal/infra/db"
)

func TestOpen_SQLiteEnforcesForeignKeys(t *testing.T) {
	cfg := db.Config{
		Driver:       "sqlite",
		DSN:          "file::memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	database, err := db.Open(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("Open err=%v", err)
	}
	defer func() { _ = database.Close() }()

	var on int
	if err := database.QueryRow("PRAGMA foreign_keys").Scan(&on); err != nil {
		t.Fatalf("failed to read pragma: %v", err)
	}
	if on != 1 {
		t.Fatalf("foreign_keys = %d, want 1", on)
	}
}

func TestOpen_Validation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if _, err := db.Open(context.Background(), db.Config{Driver: "pgx"}, logger); err == nil {
		t.Fatal("Open err=nil, want error for empty DSN")
	}
	if _, err := db.Open(context.Background(), db.Config{Driver: "oracle", DSN: "x"}, logger); err == nil {
		t.Fatal("Open err=nil, want error for unsupported driver")
	}
}
