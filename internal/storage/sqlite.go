package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/XSAM/otelsql"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteStore keeps every slot as one row of a single table. This is the
// default durable backend.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (or creates) the slot database with OpenTelemetry
// instrumentation on the driver.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if path == "" {
		path = "clinic.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := otelsql.Open("sqlite", path,
		otelsql.WithAttributes(
			semconv.DBSystemSqlite,
			semconv.DBName(filepath.Base(path)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Register database stats for metrics
	err = otelsql.RegisterDBStatsMetrics(db,
		otelsql.WithAttributes(
			semconv.DBSystemSqlite,
			semconv.DBName(filepath.Base(path)),
		),
	)
	if err != nil {
		log.Printf("Warning: failed to register database stats metrics: %v", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS slots (
		name TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create slots table: %w", err)
	}

	// Single local writer; overlapping saves would otherwise hit SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	log.Printf("✓ Opened SQLite slot store at %s (OpenTelemetry enabled)", path)
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context, slot string) ([]byte, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx, `SELECT payload FROM slots WHERE name = ?`, slot).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %q: %w", slot, err)
	}
	return payload, nil
}

func (s *SQLiteStore) Save(ctx context.Context, slot string, payload []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (name, payload) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload
	`, slot, payload)
	if err != nil {
		return fmt.Errorf("failed to save slot %q: %w", slot, err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Ensure SQLiteStore implements Store
var _ Store = (*SQLiteStore)(nil)
