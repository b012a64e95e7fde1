package domain

// Board is the 6x7 grid. Row 0 is the top row and row Rows-1 the bottom,
// so a dropped piece lands on the highest-index empty row of its column.
// The array type gives value semantics: assigning a Board copies it.
type Board [Rows][Columns]Piece

func NewBoard() Board {
	return Board{}
}

// LowestEmptyRow returns the row a piece dropped into column would land
// on, or (-1, false) when the column is full. A column outside [0, Columns)
// is a caller bug, not a game state.
func (b *Board) LowestEmptyRow(column int) (int, bool) {
	if column < 0 || column >= Columns {
		panic(ErrInvalidColumn)
	}

	// scanning from the bottom up, the first empty cell is the destination
	for row := Rows - 1; row >= 0; row-- {
		if b[row][column] == Empty {
			return row, true
		}
	}

	return -1, false
}

func (b *Board) CanPlay(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// here b[0] represents the top row (0 -> top and 5 -> bottom)
	return b[0][column] == Empty
}

// Place drops a piece into column and returns the row it landed on. A full
// column leaves the board untouched and returns (-1, false).
func (b *Board) Place(column int, piece Piece) (int, bool) {
	row, ok := b.LowestEmptyRow(column)
	if !ok {
		return -1, false
	}

	b[row][column] = piece
	return row, true
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b[0][c] == Empty {
			return false
		}
	}

	return true
}

// Copy hands out an independent snapshot for callers that branch, so a
// simulated line never aliases the live board.
func (b Board) Copy() Board {
	return b
}

// ValidMoves lists the playable columns in ascending order. The order
// matters: search tie-breaks depend on it.
func (b *Board) ValidMoves() []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if b[0][col] == Empty {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}
