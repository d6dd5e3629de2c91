package history

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

// Schema version tracking:
// 1 - Initial schema
const currentSchemaVersion = 1

// Store is the Postgres-backed back history
type Store struct {
	db *sql.DB
}

// Open connects to Postgres at the given DATABASE_URL, applies the schema,
// and runs pending migrations. Idempotent.
func Open(databaseURL string) (*Store, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := applySchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Record appends an entry to the back history
func (s *Store) Record(ctx context.Context, entry *Entry) error {
	prepare(entry)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO history_entries
			(id, kind, agent, task, topic, input, output, tokens_used, duration_ms, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		entry.ID, entry.Kind, entry.Agent, entry.Task, entry.Topic,
		entry.Input, entry.Output, entry.TokensUsed, entry.Duration.Milliseconds(),
		entry.Status, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("record history entry: %w", err)
	}
	return nil
}

// ListRecent returns the most recent entries, newest first
func (s *Store) ListRecent(ctx context.Context, limit int) ([]*Entry, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, agent, task, topic, input, output, tokens_used, duration_ms, status, created_at
		FROM history_entries
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list history entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ByTopic returns all entries for a topic, newest first
func (s *Store) ByTopic(ctx context.Context, topic string) ([]*Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, kind, agent, task, topic, input, output, tokens_used, duration_ms, status, created_at
		FROM history_entries
		WHERE topic = $1
		ORDER BY created_at DESC`, topic)
	if err != nil {
		return nil, fmt.Errorf("list history entries by topic: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows *sql.Rows) ([]*Entry, error) {
	var entries []*Entry
	for rows.Next() {
		var e Entry
		var durationMs int64
		if err := rows.Scan(&e.ID, &e.Kind, &e.Agent, &e.Task, &e.Topic,
			&e.Input, &e.Output, &e.TokensUsed, &durationMs, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		e.Duration = time.Duration(durationMs) * time.Millisecond
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history entries: %w", err)
	}
	return entries, nil
}

// applySchema creates tables if they don't exist and runs migrations
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return runMigrations(db)
}

// runMigrations applies incremental migrations based on schema_migrations
func runMigrations(db *sql.DB) error {
	var version sql.NullInt64
	if err := db.QueryRow(`SELECT MAX(version) FROM schema_migrations`).Scan(&version); err != nil {
		return fmt.Errorf("get schema version: %w", err)
	}

	current := int(version.Int64)
	for v := current + 1; v <= currentSchemaVersion; v++ {
		if err := applyMigration(db, v); err != nil {
			return fmt.Errorf("migration %d: %w", v, err)
		}
	}
	return nil
}

func applyMigration(db *sql.DB, version int) error {
	// Version 1 is the embedded base schema; later versions add their
	// statements here before the version row is written.
	_, err := db.Exec(`INSERT INTO schema_migrations (version) VALUES ($1)`, version)
	return err
}
