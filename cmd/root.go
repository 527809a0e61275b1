package cmd

import (
	"fmt"
	"strings"

	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/config"
	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/store"
	"github.com/FarihaChoudhury/Assessment-Fundamentals-Week-2/internal/trainee"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "assess",
		Short:         "Track trainee assessments and mark quizzes",
		Long:          "assess records trainees, marks quiz answer sheets and keeps weighted assessment scores.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ASSESS_DB env var)")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable coloured output")

	rootCmd.AddCommand(newTraineeCmd())
	rootCmd.AddCommand(newMarkCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// loadConfig merges environment configuration with command-line flags.
// Flags take priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if nc, _ := cmd.Flags().GetBool("no-color"); nc {
		cfg.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// openStore resolves the database path and opens the store.
func openStore(cfg config.Config) (*store.Store, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		dbPath = p
	} else if err := store.EnsureDir(dbPath); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// findTrainee looks a trainee up by email when ref contains '@', by ID otherwise.
func findTrainee(cmd *cobra.Command, repo store.TraineeRepo, ref string) (*trainee.Trainee, error) {
	if strings.Contains(ref, "@") {
		return repo.GetByEmail(cmd.Context(), ref)
	}
	return repo.Get(cmd.Context(), ref)
}
