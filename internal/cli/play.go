package cli

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/agnanachandran/connect-four/internal/domain"
	"github.com/agnanachandran/connect-four/internal/render"
	"github.com/agnanachandran/connect-four/internal/service/game"
	"github.com/agnanachandran/connect-four/internal/service/player"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a single game",
		RunE: func(cmd *cobra.Command, args []string) error {
			redMode, err := player.ParseMode(cfg.RedMode)
			if err != nil {
				return err
			}
			yellowMode, err := player.ParseMode(cfg.YellowMode)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			opts := player.Options{
				Prompter: &stdinPrompter{in: bufio.NewReader(cmd.InOrStdin()), out: out},
				Feedback: out,
				Rand:     newRand(cfg.Seed),
				Depth:    cfg.SearchDepth,
			}

			redSelector, err := player.NewSelector(redMode, opts)
			if err != nil {
				return err
			}
			yellowSelector, err := player.NewSelector(yellowMode, opts)
			if err != nil {
				return err
			}

			renderer := render.New(out, !cfg.NoColor)
			controller := game.NewController(
				player.Player{Name: "red", Piece: domain.Red, Selector: redSelector},
				player.Player{Name: "yellow", Piece: domain.Yellow, Selector: yellowSelector},
				renderer,
			)

			result, err := controller.Play()
			if err != nil {
				return err
			}

			fmt.Fprintln(out, renderer.ResultMessage(result))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfg.RedMode, "red", cfg.RedMode, "Red player: human, random, easy, minimax, alphabeta (env: RED_MODE)")
	cmd.Flags().StringVar(&cfg.YellowMode, "yellow", cfg.YellowMode, "Yellow player: human, random, easy, minimax, alphabeta (env: YELLOW_MODE)")
	cmd.Flags().IntVar(&cfg.SearchDepth, "depth", cfg.SearchDepth, "Search depth for minimax players (env: SEARCH_DEPTH)")
	cmd.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "Random seed, 0 picks one from the clock (env: RANDOM_SEED)")

	return cmd
}

func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug().Msgf("seeding random players with %d", seed)
	return rand.New(rand.NewSource(seed))
}

// stdinPrompter asks on the terminal and hands the raw line back for the
// player to parse.
type stdinPrompter struct {
	in  *bufio.Reader
	out io.Writer
}

func (p *stdinPrompter) PromptColumn(name string) (string, error) {
	fmt.Fprintf(p.out, "%s, choose a column (1-%d): ", name, domain.Columns)
	line, err := p.in.ReadString('\n')
	if err != nil && len(line) == 0 {
		return "", err
	}
	return line, nil
}
