package bot

import (
	"github.com/agnanachandran/connect-four/internal/domain"
)

const (
	// Score magnitudes per 4-cell window (mirrored negative for the
	// opposing piece)
	SCORE_WIN          = 1000000 // completed four-in-a-row
	SCORE_THREE_IN_ROW = 5       // three pieces plus an empty cell
	SCORE_TWO_IN_ROW   = 2       // two pieces plus two empty cells
	SCORE_CENTER       = 3       // per piece in the center column
)

// windowDirections matches the order the win scan checks: horizontal,
// diagonal up-right, diagonal down-right, vertical.
var windowDirections = [4][2]int{
	{0, 1},
	{-1, 1},
	{1, 1},
	{1, 0},
}

// Evaluate scores a position from forPiece's point of view: positive means
// forPiece is better off. Every 4-cell window on the board is scored for
// both sides from the same fixed table, so swapping the two pieces exactly
// negates the result. The heuristic is static; it knows nothing about whose
// turn it is, and all look-ahead belongs to the search.
func Evaluate(b domain.Board, forPiece, againstPiece domain.Piece) int {
	score := 0

	// center control: the middle column touches the most windows
	center := domain.Columns / 2
	for row := 0; row < domain.Rows; row++ {
		switch b[row][center] {
		case forPiece:
			score += SCORE_CENTER
		case againstPiece:
			score -= SCORE_CENTER
		}
	}

	for row := 0; row < domain.Rows; row++ {
		for col := 0; col < domain.Columns; col++ {
			for _, dir := range windowDirections {
				score += scoreWindow(&b, row, col, dir[0], dir[1], forPiece, againstPiece)
			}
		}
	}

	return score
}

// scoreWindow rates the 4-cell window starting at (row, col) along
// (deltaRow, deltaCol). Windows that run off the board contribute nothing.
func scoreWindow(b *domain.Board, row, col, deltaRow, deltaCol int, forPiece, againstPiece domain.Piece) int {
	endRow := row + (domain.ToWin-1)*deltaRow
	endCol := col + (domain.ToWin-1)*deltaCol
	if endRow < 0 || endRow >= domain.Rows || endCol < 0 || endCol >= domain.Columns {
		return 0
	}

	own, theirs, empty := 0, 0, 0
	r, c := row, col
	for i := 0; i < domain.ToWin; i++ {
		switch b[r][c] {
		case forPiece:
			own++
		case againstPiece:
			theirs++
		default:
			empty++
		}
		r += deltaRow
		c += deltaCol
	}

	return sideScore(own, empty) - sideScore(theirs, empty)
}

func sideScore(count, empty int) int {
	switch {
	case count == domain.ToWin:
		return SCORE_WIN
	case count == 3 && empty == 1:
		return SCORE_THREE_IN_ROW
	case count == 2 && empty == 2:
		return SCORE_TWO_IN_ROW
	}
	return 0
}
