// Package sqlite implements the repository interfaces on SQLite.
//
// The driver is modernc.org/sqlite — a pure-Go translation of SQLite, so
// the binary builds without cgo and cross-compiles cleanly. The database
// is a single file (or ":memory:" in tests).
//
// The schema is created in-process with CREATE TABLE IF NOT EXISTS: eight
// fixed tables, no migration history to track. List-valued fields are
// stored as JSON arrays in TEXT columns (see model.StringList).
package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/sakif/portfolio-api/internal/apperror"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

// DB owns the connection pool. Each entity gets its own repo type
// (SkillRepo, ProjectRepo, ...) sharing this pool — one struct per
// repository interface, since the interfaces have colliding method names.
type DB struct {
	conn *sql.DB
}

// New opens the database, applies pragmas, and creates the schema.
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets reads proceed while a write is in flight — without it the
	// whole file locks on every admin mutation.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: enabling foreign keys: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	return db, nil
}

// Close closes the connection pool, flushing the WAL.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id            TEXT PRIMARY KEY,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at    DATETIME NOT NULL,
			updated_at    DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS skills (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL UNIQUE,
			icon_class TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id           TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			description  TEXT NOT NULL,
			technologies TEXT NOT NULL DEFAULT '[]',
			repo_link    TEXT NOT NULL DEFAULT '',
			live_link    TEXT NOT NULL DEFAULT '',
			image_url    TEXT NOT NULL,
			created_at   DATETIME NOT NULL,
			updated_at   DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS experience (
			id               TEXT PRIMARY KEY,
			title            TEXT NOT NULL,
			company          TEXT NOT NULL,
			start_date       DATETIME NOT NULL,
			end_date         DATETIME,
			responsibilities TEXT NOT NULL DEFAULT '[]',
			technologies     TEXT NOT NULL DEFAULT '[]',
			created_at       DATETIME NOT NULL,
			updated_at       DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_experience_start_date ON experience(start_date)`,
		`CREATE TABLE IF NOT EXISTS articles (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			medium_url TEXT NOT NULL UNIQUE,
			image_url  TEXT NOT NULL,
			excerpt    TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles(created_at)`,
		`CREATE TABLE IF NOT EXISTS social_links (
			id         TEXT PRIMARY KEY,
			platform   TEXT NOT NULL UNIQUE,
			url        TEXT NOT NULL,
			icon_class TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS contact_messages (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			subject    TEXT NOT NULL DEFAULT '',
			message    TEXT NOT NULL,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_contact_messages_created_at ON contact_messages(created_at)`,
		`CREATE TABLE IF NOT EXISTS homepage_content (
			id                   TEXT PRIMARY KEY,
			name                 TEXT NOT NULL,
			headline             TEXT NOT NULL,
			about_text           TEXT NOT NULL,
			profile_image_url    TEXT NOT NULL DEFAULT '',
			featured_skill_ids   TEXT NOT NULL DEFAULT '[]',
			featured_project_ids TEXT NOT NULL DEFAULT '[]',
			resume_url           TEXT NOT NULL DEFAULT '',
			created_at           DATETIME NOT NULL,
			updated_at           DATETIME NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.conn.Exec(stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}

	return nil
}

// isUniqueViolation reports whether err is a UNIQUE constraint failure.
// The driver exposes no typed error for this, so the standard idiom is
// matching SQLite's stable error text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// checkAffected turns a zero-row UPDATE/DELETE into the resource's
// not-found error. One round trip instead of SELECT-then-mutate.
func checkAffected(result sql.Result, resource string) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	if n == 0 {
		return apperror.NotFound(resource)
	}
	return nil
}
