package cache

import (
	"context"
	"database/sql"
	"fmt"
)

// Store records which files have already been converted so repeat runs can
// skip them.
type Store interface {
	// Lookup reports whether path was already converted with the same
	// content and configuration fingerprint.
	Lookup(ctx context.Context, path, contentHash, fingerprint string) (bool, error)
	// Record stores (or refreshes) the conversion record for path.
	Record(ctx context.Context, path, contentHash, fingerprint, outputStyle string) error
	// Forget drops every record for path.
	Forget(ctx context.Context, path string) error
	Close() error
}

// SQLiteCache implements Store using SQLite
type SQLiteCache struct {
	db *sql.DB
}

// openDatabase opens a SQLite database with appropriate settings
func openDatabase(dbPath string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dbPath)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// SQLite benefits from a single writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	return db, nil
}

// New creates a new SQLite conversion cache at dbPath, applying any pending
// migrations.
func New(dbPath string) (*SQLiteCache, error) {
	db, err := openDatabase(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := ApplyMigrations(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return &SQLiteCache{db: db}, nil
}

// Close closes the database connection
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// Lookup reports whether path was already converted with the same content
// hash under the same configuration fingerprint.
func (c *SQLiteCache) Lookup(ctx context.Context, path, contentHash, fingerprint string) (bool, error) {
	var count int
	err := c.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM conversions
		WHERE file_path = ? AND content_hash = ? AND config_fingerprint = ?
	`, path, contentHash, fingerprint).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to query conversion record: %w", err)
	}
	return count > 0, nil
}

// Record upserts the conversion record for path. An existing record for the
// same path and fingerprint is refreshed with the new content hash.
func (c *SQLiteCache) Record(ctx context.Context, path, contentHash, fingerprint, outputStyle string) error {
	_, err := c.db.ExecContext(ctx, `
		INSERT INTO conversions (file_path, content_hash, config_fingerprint, output_style)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(file_path, config_fingerprint) DO UPDATE SET
			content_hash = excluded.content_hash,
			output_style = excluded.output_style,
			converted_at = CURRENT_TIMESTAMP
	`, path, contentHash, fingerprint, outputStyle)
	if err != nil {
		return fmt.Errorf("failed to record conversion: %w", err)
	}
	return nil
}

// Forget removes every conversion record for path.
func (c *SQLiteCache) Forget(ctx context.Context, path string) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM conversions WHERE file_path = ?", path); err != nil {
		return fmt.Errorf("failed to delete conversion records: %w", err)
	}
	return nil
}
