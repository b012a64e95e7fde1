package domain

// Directions a four-in-a-row is checked along, in the fixed order the
// board scan uses: horizontal, diagonal up-right, diagonal down-right,
// vertical. Row 0 is the top, so "up" means a decreasing row index.
var winDirections = [4][2]int{
	{0, 1},  // horizontal
	{-1, 1}, // diagonal up-right
	{1, 1},  // diagonal down-right
	{1, 0},  // vertical
}

// Result scans the whole board for a completed four-in-a-row. Cells are
// visited row by row from the top, each cell checking its four directions
// in the fixed order above, and the first win found is returned. Boards
// where both pieces hold a four-in-a-row cannot come up under alternating
// turns, but on such a board the scan order is the documented tie-break.
func (b *Board) Result() Result {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			piece := b[row][col]
			if piece == Empty {
				continue
			}
			for _, dir := range winDirections {
				if b.winFrom(row, col, dir[0], dir[1], piece) {
					return Result{Status: StatusWon, Winner: piece}
				}
			}
		}
	}

	if b.IsFull() {
		return Result{Status: StatusDraw}
	}

	return Result{Status: StatusInProgress}
}

// winFrom reports whether the ToWin cells starting at (row, col) and
// stepping by (deltaRow, deltaCol) all hold piece. Windows running off
// the board edge never match.
func (b *Board) winFrom(row, col, deltaRow, deltaCol int, piece Piece) bool {
	r, c := row, col
	for i := 0; i < ToWin; i++ {
		if r < 0 || r >= Rows || c < 0 || c >= Columns {
			return false
		}
		if b[r][c] != piece {
			return false
		}
		r += deltaRow
		c += deltaCol
	}
	return true
}
