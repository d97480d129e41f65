package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBName is the lexicon database file created inside the data directory.
const DBName = "corpus.db"

// Store is a sqlite-backed custom word list. It satisfies corpus.Source so an
// imported lexicon can replace the embedded answers.
type Store struct {
	db *sql.DB
}

// ImportRecord describes one call to ImportWords.
type ImportRecord struct {
	ID         int64
	Source     string
	Added      int
	ImportedAt time.Time
}

// New opens (creating if needed) the lexicon database under dataDir.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return Open(filepath.Join(dataDir, DBName))
}

// Open opens the lexicon database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialise schema: %w", err)
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS words (
		word TEXT PRIMARY KEY,
		position INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_words_position ON words(position);

	CREATE TABLE IF NOT EXISTS imports (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		source TEXT,
		added INTEGER DEFAULT 0,
		imported_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(schema)
	return err
}

// ImportWords appends words after the existing lexicon, keeping their order.
// Words already present keep their original position. It returns how many
// new words were stored.
func (s *Store) ImportWords(ctx context.Context, source string, words []string) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var next int
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(position) + 1, 0) FROM words").Scan(&next); err != nil {
		return 0, err
	}

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO words (word, position) VALUES (?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()

	added := 0
	for _, word := range words {
		res, err := stmt.ExecContext(ctx, word, next)
		if err != nil {
			return 0, fmt.Errorf("failed to insert %q: %w", word, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		if n > 0 {
			added++
			next++
		}
	}

	_, err = tx.ExecContext(ctx, "INSERT INTO imports (source, added) VALUES (?, ?)", source, added)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return added, nil
}

// Words returns the lexicon in import order.
func (s *Store) Words(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT word FROM words ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []string
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, rows.Err()
}

func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM words").Scan(&count)
	return count, err
}

// Imports returns the import log, most recent first.
func (s *Store) Imports(ctx context.Context) ([]ImportRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, COALESCE(source, ''), added, imported_at FROM imports ORDER BY id DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []ImportRecord
	for rows.Next() {
		var r ImportRecord
		if err := rows.Scan(&r.ID, &r.Source, &r.Added, &r.ImportedAt); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Clear removes every stored word and the import log.
func (s *Store) Clear(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM words"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM imports"); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *Store) Close() error {
	return s.db.Close()
}
