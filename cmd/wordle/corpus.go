package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/aayushbajaj/wordle-assist/internal/config"
	"github.com/aayushbajaj/wordle-assist/internal/corpus"
	"github.com/aayushbajaj/wordle-assist/internal/storage"
	"github.com/aayushbajaj/wordle-assist/pkg/stats"
	"github.com/spf13/cobra"
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Manage the imported word list",
	Long: `Import a custom word list into the local lexicon database. Run any command
with --lexicon (or set WORDLE_CORPUS_DB=true) to play against it.`,
}

var corpusImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import five-letter words from a text file, one per line",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return importWords(cmd, args[0])
	},
}

var corpusListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the imported word list and its letter statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listWords(cmd)
	},
}

var corpusClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every imported word",
	RunE: func(cmd *cobra.Command, args []string) error {
		return clearWords(cmd)
	},
}

func init() {
	corpusCmd.AddCommand(corpusImportCmd)
	corpusCmd.AddCommand(corpusListCmd)
	corpusCmd.AddCommand(corpusClearCmd)
}

func openStore() (*storage.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	store, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	return store, nil
}

func importWords(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read word list: %w", err)
	}

	words := corpus.ParseWordList(string(data))
	if len(words) == 0 {
		return fmt.Errorf("%s: %w", path, corpus.ErrEmptyCorpus)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	added, err := store.ImportWords(cmd.Context(), filepath.Base(path), words)
	if err != nil {
		return fmt.Errorf("failed to import words: %w", err)
	}

	total, err := store.Count(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to count words: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d new words (%d total)\n", added, total)
	return nil
}

func listWords(cmd *cobra.Command) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	words, err := store.Words(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read words: %w", err)
	}

	imports, err := store.Imports(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read import log: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(words) == 0 {
		fmt.Fprintln(out, "No words imported. Use 'wordle corpus import <file>'.")
		return nil
	}

	summary := stats.Summarize(words)

	fmt.Fprintln(out, "📚 Imported Word List")
	fmt.Fprintln(out, "────────────────────")
	fmt.Fprintf(out, "Words:          %s\n", stats.FormatCount(int64(summary.Words)))
	fmt.Fprintf(out, "Common letter:  %c (%s words)\n", summary.PeakLetter, stats.FormatCount(summary.PeakCount))
	fmt.Fprintf(out, "Avg distinct:   %.2f letters\n", summary.AvgDistinct)
	for _, r := range imports {
		fmt.Fprintf(out, "  %s  %-20s +%d\n", r.ImportedAt.Format("2006-01-02 15:04"), r.Source, r.Added)
	}
	return nil
}

func clearWords(cmd *cobra.Command) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Clear(cmd.Context()); err != nil {
		return fmt.Errorf("failed to clear word list: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Imported word list cleared")
	return nil
}
