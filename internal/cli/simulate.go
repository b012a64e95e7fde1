package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agnanachandran/connect-four/internal/domain"
	"github.com/agnanachandran/connect-four/internal/service/game"
	"github.com/agnanachandran/connect-four/internal/service/player"
)

func newSimulateCmd() *cobra.Command {
	red := "alphabeta"
	yellow := "alphabeta"

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Play a series of bot games and report Elo ratings",
		RunE: func(cmd *cobra.Command, args []string) error {
			redMode, err := player.ParseMode(red)
			if err != nil {
				return err
			}
			yellowMode, err := player.ParseMode(yellow)
			if err != nil {
				return err
			}
			if redMode.IsInteractive() || yellowMode.IsInteractive() {
				return fmt.Errorf("simulate needs bot players, got %s vs %s", red, yellow)
			}

			opts := player.Options{
				Rand:  newRand(cfg.Seed),
				Depth: cfg.SearchDepth,
			}
			redSelector, err := player.NewSelector(redMode, opts)
			if err != nil {
				return err
			}
			yellowSelector, err := player.NewSelector(yellowMode, opts)
			if err != nil {
				return err
			}

			summary, err := game.RunSeries(game.SeriesConfig{
				Games:  cfg.Games,
				Red:    player.Player{Name: "red", Piece: domain.Red, Selector: redSelector},
				Yellow: player.Player{Name: "yellow", Piece: domain.Yellow, Selector: yellowSelector},
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "played %d games: red (%s) won %d, yellow (%s) won %d, %d draws\n",
				summary.Games, red, summary.RedWins, yellow, summary.YellowWins, summary.Draws)
			fmt.Fprintf(out, "average game length: %.1f moves\n", float64(summary.Moves)/float64(summary.Games))
			fmt.Fprintf(out, "elo after series: red %d, yellow %d\n", summary.RedElo, summary.YellowElo)
			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.Games, "games", cfg.Games, "Number of games to play (env: SERIES_GAMES)")
	cmd.Flags().StringVar(&red, "red", red, "Red bot: random, easy, minimax, alphabeta")
	cmd.Flags().StringVar(&yellow, "yellow", yellow, "Yellow bot: random, easy, minimax, alphabeta")
	cmd.Flags().IntVar(&cfg.SearchDepth, "depth", cfg.SearchDepth, "Search depth for minimax bots (env: SEARCH_DEPTH)")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 picks one from the clock (env: RANDOM_SEED)")

	return cmd
}
