// Package main provides the CLI entrypoint for tuidle.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuidle/internal/config"
	"github.com/verte-zerg/tuidle/internal/game"
	"github.com/verte-zerg/tuidle/internal/generator"
	"github.com/verte-zerg/tuidle/internal/logging"
	"github.com/verte-zerg/tuidle/internal/model"
	"github.com/verte-zerg/tuidle/internal/stats"
	"github.com/verte-zerg/tuidle/internal/store"
	"github.com/verte-zerg/tuidle/internal/tui"
	"github.com/verte-zerg/tuidle/internal/wordlist"
)

var (
	playAttempts    int
	playWordList    string
	playAvoidRecent int
)

func main() {
	// A missing .env is the common case.
	_ = godotenv.Load()

	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuidle",
		Short:         "Guess the five-letter word in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().IntVar(&playAttempts, "attempts", game.DefaultMaxAttempts, "guesses per game")
	rootCmd.Flags().StringVar(&playWordList, "words", "", "word list file (default: built-in list)")
	rootCmd.Flags().IntVar(&playAvoidRecent, "avoid-recent", 0, "skip answers from the last N games")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newResetCmd())

	return rootCmd
}

// gameStore is what the play command needs from persistence.
type gameStore interface {
	stats.OutcomeStore
	RecentTargets(ctx context.Context, n int) ([]string, error)
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "attempts", &playAttempts, fileCfg.Game.MaxAttempts)
	applyStringConfig(cmd, "words", &playWordList, fileCfg.Game.WordList)
	applyIntConfig(cmd, "avoid-recent", &playAvoidRecent, fileCfg.Game.AvoidRecent)

	cfg := model.Config{
		MaxAttempts:  playAttempts,
		WordListPath: playWordList,
		AvoidRecent:  playAvoidRecent,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	logger, closeLog := setupLogger(fileCfg)
	defer closeLog()

	words, err := wordlist.Load(cfg.WordListPath, generator.New())
	if err != nil {
		return err
	}

	ctx := context.Background()
	st, closeStore := openGameStore(logger)
	defer closeStore()

	if cfg.AvoidRecent > 0 {
		recent, err := st.RecentTargets(ctx, cfg.AvoidRecent)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to load recent answers")
		}
		words.AvoidRecent(cfg.AvoidRecent, recent)
	}

	tracker := stats.NewTracker(st)
	if err := tracker.Load(ctx); err != nil {
		logger.Warn().Err(err).Msg("starting with empty stats")
	}

	ctrl, err := game.NewController(game.NewSession(cfg.MaxAttempts), words, tracker, logger)
	if err != nil {
		return fmt.Errorf("failed to start game: %w", err)
	}
	logger.Info().
		Int("words", words.Len()).
		Int("max_attempts", cfg.MaxAttempts).
		Msg("game started")

	program := tea.NewProgram(tui.NewModel(ctx, ctrl, tracker), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func setupLogger(fileCfg config.FileConfig) (zerolog.Logger, func()) {
	cfgLevel := ""
	if fileCfg.Log.Level != nil {
		cfgLevel = *fileCfg.Log.Level
	}
	level, err := logging.ResolveLevel(cfgLevel)
	if err != nil {
		logErrf("%v; using %s\n", err, level)
	}
	logger, closeFn, err := logging.Setup(config.DefaultLogPath(), level)
	if err != nil {
		logErrf("logging disabled: %v\n", err)
		return zerolog.Nop(), func() {}
	}
	return logger, func() {
		if cerr := closeFn(); cerr != nil {
			// Best-effort close of the log file.
			_ = cerr
		}
	}
}

func openGameStore(logger zerolog.Logger) (gameStore, func()) {
	path := config.DefaultDBPath()
	st, err := store.Open(path)
	if err != nil {
		err = fmt.Errorf("%w: %w", game.ErrStorageUnavailable, err)
		logger.Warn().Err(err).Str("path", path).Msg("stats will not be saved")
		logErrf("warning: %v; stats will not be saved\n", err)
		return store.NewMemory(), func() {}
	}
	return st, func() {
		if cerr := st.Close(); cerr != nil {
			logger.Warn().Err(cerr).Msg("failed to close db")
		}
	}
}

func validateConfig(cfg model.Config) error {
	if cfg.MaxAttempts <= 0 {
		return fmt.Errorf("--attempts must be > 0: %w", game.ErrConfiguration)
	}
	if cfg.AvoidRecent < 0 {
		return fmt.Errorf("--avoid-recent must be >= 0: %w", game.ErrConfiguration)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
