package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/aayushbajaj/wordle-assist/internal/corpus"
	_ "github.com/mattn/go-sqlite3"
)

// newTestStore creates a test store with a temporary database
func newTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir := t.TempDir()

	dbPath := filepath.Join(tmpDir, "test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("Failed to init schema: %v", err)
	}

	store := &Store{db: db}
	cleanup := func() {
		store.Close()
	}

	return store, cleanup
}

var _ corpus.Source = (*Store)(nil)

func TestImportWords(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	added, err := store.ImportWords(ctx, "first.txt", []string{"crane", "trace", "robot"})
	if err != nil {
		t.Fatalf("ImportWords failed: %v", err)
	}
	if added != 3 {
		t.Errorf("Expected 3 words added, got %d", added)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 words, got %d", count)
	}
}

func TestImportWordsKeepsOrderAndSkipsDuplicates(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if _, err := store.ImportWords(ctx, "a", []string{"robot", "crane"}); err != nil {
		t.Fatalf("ImportWords failed: %v", err)
	}
	added, err := store.ImportWords(ctx, "b", []string{"crane", "apple", "robot", "angle"})
	if err != nil {
		t.Fatalf("ImportWords failed: %v", err)
	}
	if added != 2 {
		t.Errorf("Expected 2 new words, got %d", added)
	}

	words, err := store.Words(ctx)
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}

	expected := []string{"robot", "crane", "apple", "angle"}
	if len(words) != len(expected) {
		t.Fatalf("Words() = %v, want %v", words, expected)
	}
	for i := range expected {
		if words[i] != expected[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, words[i], expected[i])
		}
	}
}

func TestWordsEmpty(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()

	words, err := store.Words(context.Background())
	if err != nil {
		t.Fatalf("Words failed: %v", err)
	}
	if len(words) != 0 {
		t.Errorf("Expected no words, got %v", words)
	}
}

func TestImports(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	store.ImportWords(ctx, "first.txt", []string{"crane"})
	store.ImportWords(ctx, "second.txt", []string{"crane", "trace"})

	records, err := store.Imports(ctx)
	if err != nil {
		t.Fatalf("Imports failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 import records, got %d", len(records))
	}

	// Most recent first
	if records[0].Source != "second.txt" || records[0].Added != 1 {
		t.Errorf("records[0] = %+v, want second.txt with 1 added", records[0])
	}
	if records[1].Source != "first.txt" || records[1].Added != 1 {
		t.Errorf("records[1] = %+v, want first.txt with 1 added", records[1])
	}
	if records[0].ImportedAt.IsZero() {
		t.Error("Expected import timestamp to be set")
	}
}

func TestClear(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	store.ImportWords(ctx, "words", []string{"crane", "trace"})

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	count, _ := store.Count(ctx)
	if count != 0 {
		t.Errorf("Expected 0 words after clear, got %d", count)
	}
	records, _ := store.Imports(ctx)
	if len(records) != 0 {
		t.Errorf("Expected empty import log after clear, got %d", len(records))
	}

	// Positions restart from zero
	store.ImportWords(ctx, "again", []string{"robot"})
	words, _ := store.Words(ctx)
	if len(words) != 1 || words[0] != "robot" {
		t.Errorf("Words() after re-import = %v, want [robot]", words)
	}
}

func TestNewCreatesDataDir(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "wordle")

	store, err := New(dataDir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(dataDir, DBName)); err != nil {
		t.Errorf("Expected database file to exist: %v", err)
	}
}

func TestStoreAsCorpusSource(t *testing.T) {
	store, cleanup := newTestStore(t)
	defer cleanup()
	ctx := context.Background()

	store.ImportWords(ctx, "custom", []string{"apple", "ample", "angle"})

	c, err := corpus.Load(ctx, store)
	if err != nil {
		t.Fatalf("corpus.Load failed: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Expected corpus of 3 words, got %d", c.Len())
	}
	if w, _ := c.WordForDay(0); w != "apple" {
		t.Errorf("WordForDay(0) = %q, want apple", w)
	}
}

func TestStoreReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store.ImportWords(ctx, "words", []string{"crane"})
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	count, _ := store.Count(ctx)
	if count != 1 {
		t.Errorf("Expected persisted word, got count %d", count)
	}
}
