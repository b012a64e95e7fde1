package game

import (
	"io"
	"math/rand"
	"testing"

	"github.com/agnanachandran/connect-four/internal/domain"
	"github.com/agnanachandran/connect-four/internal/service/player"

	"github.com/stretchr/testify/require"
)

func TestRunSeries(t *testing.T) {
	t.Run("alternating first move splits a mirrored matchup", func(t *testing.T) {
		cfg := SeriesConfig{
			Games:  4,
			Red:    player.Player{Name: "red", Piece: domain.Red, Selector: constantSelector{col: 0}},
			Yellow: player.Player{Name: "yellow", Piece: domain.Yellow, Selector: constantSelector{col: 1}},
		}

		gotSummary, err := RunSeries(cfg)

		require.NoError(t, err)
		require.Equal(t, 4, gotSummary.Games)
		require.Equal(t, 2, gotSummary.RedWins, "red wins the games it starts")
		require.Equal(t, 2, gotSummary.YellowWins, "yellow wins the games it starts")
		require.Zero(t, gotSummary.Draws)
		require.Equal(t, 28, gotSummary.Moves, "each stack race lasts seven moves")
	})

	t.Run("a single win moves the elo by the even-odds step", func(t *testing.T) {
		cfg := SeriesConfig{
			Games:  1,
			Red:    player.Player{Name: "red", Piece: domain.Red, Selector: constantSelector{col: 3}},
			Yellow: player.Player{Name: "yellow", Piece: domain.Yellow, Selector: constantSelector{col: 4}},
		}

		gotSummary, err := RunSeries(cfg)

		require.NoError(t, err)
		require.Equal(t, 1, gotSummary.RedWins)
		require.Equal(t, 1216, gotSummary.RedElo)
		require.Equal(t, 1184, gotSummary.YellowElo)
	})

	t.Run("wins and draws always add up to the games played", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))
		cfg := SeriesConfig{
			Games:  6,
			Red:    player.Player{Name: "red", Piece: domain.Red, Selector: &player.Random{Rand: rng}},
			Yellow: player.Player{Name: "yellow", Piece: domain.Yellow, Selector: &player.Random{Rand: rng}},
		}

		gotSummary, err := RunSeries(cfg)

		require.NoError(t, err)
		require.Equal(t, gotSummary.Games, gotSummary.RedWins+gotSummary.YellowWins+gotSummary.Draws)
		require.Positive(t, gotSummary.Moves)
	})

	t.Run("same seed reproduces the same series", func(t *testing.T) {
		run := func() SeriesSummary {
			rng := rand.New(rand.NewSource(99))
			cfg := SeriesConfig{
				Games:  5,
				Red:    player.Player{Name: "red", Piece: domain.Red, Selector: &player.Easy{Rand: rng}},
				Yellow: player.Player{Name: "yellow", Piece: domain.Yellow, Selector: &player.Random{Rand: rng}},
			}
			summary, err := RunSeries(cfg)
			require.NoError(t, err)
			return summary
		}

		require.Equal(t, run(), run())
	})

	t.Run("rejects a series without games", func(t *testing.T) {
		_, err := RunSeries(SeriesConfig{})

		require.Error(t, err)
	})

	t.Run("rejects players holding the wrong pieces", func(t *testing.T) {
		cfg := SeriesConfig{
			Games:  1,
			Red:    player.Player{Name: "red", Piece: domain.Yellow, Selector: constantSelector{col: 0}},
			Yellow: player.Player{Name: "yellow", Piece: domain.Red, Selector: constantSelector{col: 1}},
		}

		_, err := RunSeries(cfg)

		require.Error(t, err)
	})

	t.Run("rejects interactive players", func(t *testing.T) {
		human := &player.Human{Prompter: nil, Feedback: io.Discard}
		cfg := SeriesConfig{
			Games:  1,
			Red:    player.Player{Name: "red", Piece: domain.Red, Selector: human},
			Yellow: player.Player{Name: "yellow", Piece: domain.Yellow, Selector: constantSelector{col: 0}},
		}

		_, err := RunSeries(cfg)

		require.Error(t, err)
	})
}
