package bot

import (
	"fmt"
	"math"
	"testing"

	"github.com/agnanachandran/connect-four/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestMinimaxTakesImmediateWin(t *testing.T) {
	// red has three on the bottom row; column 3 completes the four
	b := domain.NewBoard()
	for col := 0; col <= 2; col++ {
		b.Place(col, domain.Red)
	}

	wantChild := b.Copy()
	wantChild.Place(3, domain.Red)
	wantValue := Evaluate(wantChild, domain.Red, domain.Yellow)

	t.Run("minimax at depth one", func(t *testing.T) {
		gotCol, gotValue := Minimax(b, 1, true, domain.Red, domain.Yellow)

		require.Equal(t, 3, gotCol)
		require.Equal(t, wantValue, gotValue)
	})

	t.Run("alpha-beta at depth one", func(t *testing.T) {
		gotCol, gotValue := MinimaxAlphaBeta(b, 1, math.MinInt, math.MaxInt, true, domain.Red, domain.Yellow)

		require.Equal(t, 3, gotCol)
		require.Equal(t, wantValue, gotValue)
	})
}

func TestMinimaxBlocksImmediateLoss(t *testing.T) {
	// yellow threatens column 3; red must block even with nothing to gain
	b := domain.NewBoard()
	for col := 0; col <= 2; col++ {
		b.Place(col, domain.Yellow)
	}

	gotCol, _ := Minimax(b, 2, true, domain.Red, domain.Yellow)
	require.Equal(t, 3, gotCol, "minimax should block the open three")

	gotCol, _ = MinimaxAlphaBeta(b, 2, math.MinInt, math.MaxInt, true, domain.Red, domain.Yellow)
	require.Equal(t, 3, gotCol, "alpha-beta should block the open three")
}

func TestMinimaxOpensInTheCenter(t *testing.T) {
	b := domain.NewBoard()

	gotCol, gotValue := Minimax(b, 1, true, domain.Red, domain.Yellow)

	require.Equal(t, 3, gotCol, "the center bonus should drive the opening move")
	require.Equal(t, SCORE_CENTER, gotValue)
}

func TestMinimaxTerminalPositions(t *testing.T) {
	t.Run("already won board returns no move", func(t *testing.T) {
		b := domain.NewBoard()
		for col := 0; col <= 3; col++ {
			b.Place(col, domain.Red)
		}

		gotCol, gotValue := Minimax(b, 3, true, domain.Red, domain.Yellow)

		require.Equal(t, -1, gotCol)
		require.Equal(t, Evaluate(b, domain.Red, domain.Yellow), gotValue)
	})

	t.Run("full board returns no move", func(t *testing.T) {
		b := fullDrawBoard(t)

		gotCol, gotValue := MinimaxAlphaBeta(b, 3, math.MinInt, math.MaxInt, true, domain.Red, domain.Yellow)

		require.Equal(t, -1, gotCol)
		require.Equal(t, Evaluate(b, domain.Red, domain.Yellow), gotValue)
	})

	t.Run("depth zero evaluates in place", func(t *testing.T) {
		b := domain.NewBoard()
		b.Place(2, domain.Red)

		gotCol, gotValue := Minimax(b, 0, true, domain.Red, domain.Yellow)

		require.Equal(t, -1, gotCol)
		require.Equal(t, Evaluate(b, domain.Red, domain.Yellow), gotValue)
	})
}

func TestMinimaxFirstWinsTieBreak(t *testing.T) {
	// columns 1-5 filled with a dead pattern symmetric about the center,
	// so columns 0 and 6 evaluate identically and the lower index wins
	b := tieBoard(t)

	gotCol, gotValue := Minimax(b, 1, true, domain.Red, domain.Yellow)
	require.Equal(t, 0, gotCol)

	gotABCol, gotABValue := MinimaxAlphaBeta(b, 1, math.MinInt, math.MaxInt, true, domain.Red, domain.Yellow)
	require.Equal(t, 0, gotABCol)
	require.Equal(t, gotValue, gotABValue)
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	boards := map[string]domain.Board{
		"empty":           domain.NewBoard(),
		"single piece":    placeSequence(t, []int{3}, domain.Red, domain.Yellow),
		"open three":      placeSequence(t, []int{0, 6, 1, 6, 2}, domain.Red, domain.Yellow),
		"midgame scatter": placeSequence(t, []int{3, 3, 2, 4, 4, 2, 5, 1, 3}, domain.Red, domain.Yellow),
		"two columns":     tieBoard(t),
	}

	for name, b := range boards {
		for depth := 1; depth <= 3; depth++ {
			for _, maximizing := range []bool{true, false} {
				t.Run(fmt.Sprintf("%s depth %d maximizing %t", name, depth, maximizing), func(t *testing.T) {
					wantCol, wantValue := Minimax(b, depth, maximizing, domain.Red, domain.Yellow)
					gotCol, gotValue := MinimaxAlphaBeta(b, depth, math.MinInt, math.MaxInt, maximizing, domain.Red, domain.Yellow)

					require.Equal(t, wantValue, gotValue, "pruning must not change the value")
					require.Equal(t, wantCol, gotCol, "pruning must not change the chosen column")
				})
			}
		}
	}
}

// tieBoard fills columns 1-5 with a four-free pattern that mirrors around
// the center column, leaving only columns 0 and 6 playable.
func tieBoard(t *testing.T) domain.Board {
	t.Helper()

	evenStack := []domain.Piece{domain.Yellow, domain.Yellow, domain.Red, domain.Red, domain.Yellow, domain.Yellow}
	oddStack := []domain.Piece{domain.Red, domain.Red, domain.Yellow, domain.Yellow, domain.Red, domain.Red}

	b := domain.NewBoard()
	for col := 1; col <= 5; col++ {
		stack := evenStack
		if col%2 == 1 {
			stack = oddStack
		}
		for _, p := range stack {
			_, ok := b.Place(col, p)
			require.True(t, ok)
		}
	}

	require.Equal(t, domain.StatusInProgress, b.Result().Status)
	require.Equal(t, []int{0, 6}, b.ValidMoves())
	return b
}

// fullDrawBoard mirrors the domain test helper: all 42 cells filled with
// alternating two-high stacks that never line up four.
func fullDrawBoard(t *testing.T) domain.Board {
	t.Helper()

	b := tieBoard(t)
	for _, col := range []int{0, 6} {
		for _, p := range []domain.Piece{domain.Red, domain.Red, domain.Yellow, domain.Yellow, domain.Red, domain.Red} {
			_, ok := b.Place(col, p)
			require.True(t, ok)
		}
	}

	require.Equal(t, domain.StatusDraw, b.Result().Status)
	return b
}
