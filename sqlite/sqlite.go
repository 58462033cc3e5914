// Package sqlite provides SQLite-based storage implementations for nicobar services.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// memoryPath is the DSN of a private in-memory database.
const memoryPath = ":memory:"

// pragma is a connection setting applied by Open.
type pragma struct {
	stmt     string
	fileOnly bool
}

// pragmas are applied in order. Card imports write thousands of rows in one
// transaction, so file databases run WAL with NORMAL sync.
var pragmas = []pragma{
	{stmt: "PRAGMA busy_timeout = 5000"},
	{stmt: "PRAGMA journal_mode = WAL", fileOnly: true},
	{stmt: "PRAGMA synchronous = NORMAL", fileOnly: true},
}

// Open connects to the database, applies pragmas and creates the article and
// game card tables if needed. It mirrors mongo.DB.Open so the CLI can open
// either store the same way.
func (db *DB) Open(ctx context.Context) (err error) {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err != nil {
			conn.Close()
		}
	}()

	// One writer at a time.
	conn.SetMaxOpenConns(1)

	if err := conn.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	for _, p := range pragmas {
		if p.fileOnly && db.path == memoryPath {
			continue
		}
		if _, err := conn.ExecContext(ctx, p.stmt); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p.stmt, err)
		}
	}

	if err := createSchema(ctx, conn); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	db.db = conn
	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a transaction.
func (db *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return db.db.BeginTx(ctx, opts)
}

// createSchema creates the database tables if they don't exist.
// List columns (tags, colors) hold JSON arrays and are queried with json_each.
func createSchema(ctx context.Context, conn *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS articles (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			content TEXT NOT NULL,
			formatted_content TEXT NOT NULL DEFAULT '',
			date TEXT NOT NULL,
			tags TEXT NOT NULL DEFAULT '[]',
			related_topics_tags TEXT NOT NULL DEFAULT '[]',
			reading_minutes INTEGER NOT NULL DEFAULT 0,
			prompt_task TEXT NOT NULL,
			prompt_topic TEXT NOT NULL,
			prompt_style TEXT NOT NULL,
			prompt_tone TEXT NOT NULL,
			prompt_audience TEXT NOT NULL,
			prompt_length TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_articles_date ON articles(date);

		CREATE TABLE IF NOT EXISTS game_cards (
			id TEXT PRIMARY KEY,
			slug TEXT NOT NULL DEFAULT '',
			card_set TEXT NOT NULL DEFAULT '',
			name TEXT NOT NULL,
			type TEXT NOT NULL DEFAULT '',
			rarity TEXT NOT NULL DEFAULT '',
			image_en TEXT NOT NULL DEFAULT '',
			image_jp TEXT NOT NULL DEFAULT '',
			feature TEXT NOT NULL DEFAULT '',
			colors TEXT NOT NULL DEFAULT '[]',
			attributes TEXT NOT NULL DEFAULT '',
			counter TEXT NOT NULL DEFAULT '',
			life INTEGER NOT NULL DEFAULT 0,
			power INTEGER NOT NULL DEFAULT 0,
			remarks TEXT NOT NULL DEFAULT '',
			text TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_game_cards_set ON game_cards(card_set);
	`

	_, err := conn.ExecContext(ctx, schema)
	return err
}
