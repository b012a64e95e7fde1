package domain

// to represent the pieces on the board
type Piece int

const (
	Empty  Piece = 0
	Red    Piece = 1
	Yellow Piece = 2
)

func (p Piece) Opponent() Piece {
	switch p {
	case Red:
		return Yellow
	case Yellow:
		return Red
	}
	return Empty
}

func (p Piece) String() string {
	switch p {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	}
	return "empty"
}

// for board representation
const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// to represent the game status
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

// Result is computed fresh from the board on every call; it is never
// stored on the board itself.
type Result struct {
	Status Status
	Winner Piece // set only when Status is StatusWon
}

func (r Result) Over() bool {
	return r.Status != StatusInProgress
}

func (r Result) String() string {
	switch r.Status {
	case StatusWon:
		return r.Winner.String() + " wins"
	case StatusDraw:
		return "draw"
	}
	return "in progress"
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn Error = "column out of range"
)
