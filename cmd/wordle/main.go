package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/aayushbajaj/wordle-assist/internal/config"
	"github.com/aayushbajaj/wordle-assist/internal/corpus"
	"github.com/aayushbajaj/wordle-assist/internal/daily"
	"github.com/aayushbajaj/wordle-assist/internal/game"
	"github.com/aayushbajaj/wordle-assist/internal/logging"
	"github.com/aayushbajaj/wordle-assist/internal/solver"
	"github.com/aayushbajaj/wordle-assist/internal/storage"
	"github.com/aayushbajaj/wordle-assist/internal/tui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Puzzle selection
	dayFlag  int
	wordFlag string
	easyMode bool

	// Assistant
	suggestMode  bool
	suggestCount int
	cheatCount   int

	// Display and corpus
	themeName  string
	useLexicon bool
)

var rootCmd = &cobra.Command{
	Use:   "wordle [guesses...]",
	Short: "Wordle in the terminal, with an assistant",
	Long: `Play a Wordle puzzle by passing your guesses as arguments. Each guess is
scored in order until the puzzle is solved or the guesses run out.

Examples:
  wordle crane                     # Score one guess against today's puzzle
  wordle -d 200 crane trace        # Play puzzle #200
  wordle -s crane                  # Show ranked suggestions for the next guess
  wordle -w robot -e about         # Practice on a fixed word in easy mode`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		g, err := a.newGame()
		if err != nil {
			return err
		}
		return a.runGuesses(cmd.OutOrStdout(), g, args)
	},
}

var playCmd = &cobra.Command{
	Use:   "play [guesses...]",
	Short: "Play interactively",
	Long: `Start the interactive board. Any guesses given as arguments are applied
first. Press tab during play to toggle ranked suggestions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		g, err := a.newGame()
		if err != nil {
			return err
		}
		return a.runPlay(cmd.OutOrStdout(), g, args)
	},
}

var explainCmd = &cobra.Command{
	Use:   "explain <word> [guesses...]",
	Short: "Score a prospective guess against the remaining candidates",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := setup(cmd)
		if err != nil {
			return err
		}
		g, err := a.newGame()
		if err != nil {
			return err
		}
		return a.runExplain(cmd.OutOrStdout(), g, args[0], args[1:])
	},
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&dayFlag, "day", "d", 0, "Which day's puzzle to try; defaults to today's")
	rootCmd.PersistentFlags().StringVarP(&wordFlag, "word", "w", "", "Word to use for the puzzle instead of the day's answer")
	rootCmd.PersistentFlags().BoolVarP(&easyMode, "easy", "e", false, "Use easy mode (revealed letters need not be reused)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "default", "Color theme (default, gruvbox, tokyonight, catppuccin)")
	rootCmd.PersistentFlags().BoolVar(&useLexicon, "lexicon", false, "Use the imported word list instead of the built-in one")
	rootCmd.PersistentFlags().BoolVarP(&suggestMode, "suggest", "s", false, "Suggest words to try based on previous results")
	rootCmd.PersistentFlags().IntVar(&suggestCount, "suggest-count", 20, "Number of words to suggest (used with --suggest)")
	rootCmd.MarkFlagsMutuallyExclusive("day", "word")

	rootCmd.Flags().CountVar(&cheatCount, "cheat", "Straight up cheat. You must supply this flag at least three times")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(explainCmd)
	rootCmd.AddCommand(corpusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds everything a command needs once config and flags are resolved.
type app struct {
	cfg          *config.Config
	logger       zerolog.Logger
	corpus       *corpus.Corpus
	ranker       *solver.Ranker
	day          *int
	word         string
	easy         bool
	suggest      bool
	suggestCount int
	cheat        int
}

func setup(cmd *cobra.Command) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Logging.Level, os.Stderr)
	if err != nil {
		return nil, err
	}

	if err := tui.SetTheme(flagOr(cmd, "theme", themeName, cfg.Display.Theme)); err != nil {
		return nil, err
	}

	count := flagOr(cmd, "suggest-count", suggestCount, cfg.Suggest.Count)
	if count <= 0 {
		return nil, fmt.Errorf("--suggest-count must be positive, got %d", count)
	}

	c, err := loadCorpus(cmd.Context(), cfg, useLexicon || cfg.Storage.CorpusDB)
	if err != nil {
		return nil, err
	}
	corpusLog := logging.Component(logger, "corpus")
	corpusLog.Debug().Int("words", c.Len()).Msg("corpus loaded")

	a := &app{
		cfg:          cfg,
		logger:       logger,
		corpus:       c,
		ranker:       solver.NewRanker(cfg.Suggest.Workers, logging.Component(logger, "ranker")),
		word:         wordFlag,
		easy:         flagOr(cmd, "easy", easyMode, cfg.Game.Easy),
		suggest:      suggestMode,
		suggestCount: count,
		cheat:        cheatCount,
	}
	if cmd.Flags().Changed("day") {
		day := dayFlag
		a.day = &day
	}
	return a, nil
}

// flagOr returns the flag's value when it was set on the command line and
// the configured value otherwise.
func flagOr[T any](cmd *cobra.Command, name string, flagValue, configured T) T {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configured
}

func loadCorpus(ctx context.Context, cfg *config.Config, lexicon bool) (*corpus.Corpus, error) {
	if !lexicon {
		return corpus.Default(), nil
	}

	store, err := storage.New(cfg.Storage.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	defer store.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	c, err := corpus.Load(ctx, store)
	if err != nil {
		return nil, fmt.Errorf("failed to load imported word list: %w", err)
	}
	return c, nil
}

// newGame picks the puzzle: a fixed word, an explicit day, or today's.
func (a *app) newGame() (*game.Game, error) {
	var g *game.Game
	if a.word != "" {
		word, err := game.Normalize(a.word)
		if err != nil {
			return nil, fmt.Errorf("invalid --word: %w", err)
		}
		g = game.ForWord(word)
	} else {
		day := daily.Index(time.Now(), a.epoch())
		if a.day != nil {
			day = *a.day
		}
		if day >= a.corpus.Len() {
			a.logger.Warn().
				Int("day", day).
				Int("words", a.corpus.Len()).
				Msg("day is past the end of the word list; the puzzle wraps and may not match the published answer (import the full list with 'wordle corpus import')")
		}
		var err error
		g, err = game.ForDay(a.corpus, day)
		if err != nil {
			return nil, err
		}
	}

	if !a.easy {
		g.WithHardMode()
	}
	return g, nil
}

func (a *app) epoch() time.Time {
	if a.cfg == nil {
		return daily.Epoch
	}
	return a.cfg.Game.Epoch
}
