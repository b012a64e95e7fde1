package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/agnanachandran/connect-four/internal/config"
)

var cfg *config.Config

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = config.LoadConfig()

	rootCmd := &cobra.Command{
		Use:   "connect4",
		Short: "Connect Four on the command line",
		Long: `connect4 plays Connect Four between any mix of human and bot players.

Bots pick moves at random, with a one-ply win-or-block scan, or with
minimax search (plain or alpha-beta pruned). The simulate command runs
bot-versus-bot series and reports results with Elo ratings.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("parsing log level %q: %w", cfg.LogLevel, err)
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: trace, debug, info, warn, error (env: LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colored board output (env: NO_COLOR)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newSimulateCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
