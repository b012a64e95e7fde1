package player

import (
	"math/rand"

	"github.com/agnanachandran/connect-four/internal/domain"
)

// Easy is the beginner tier: it takes an immediate win when one exists,
// otherwise blocks the opponent's immediate win, otherwise plays a random
// playable column. No deeper look-ahead.
type Easy struct {
	Rand *rand.Rand
}

func (e *Easy) SelectColumn(b domain.Board, self, opponent domain.Piece) (int, error) {
	validColumns := b.ValidMoves()
	if len(validColumns) == 0 {
		return -1, ErrNoPlayableColumn
	}

	for _, col := range validColumns {
		test := b.Copy()
		test.Place(col, self)
		if res := test.Result(); res.Status == domain.StatusWon && res.Winner == self {
			return col, nil
		}
	}

	for _, col := range validColumns {
		test := b.Copy()
		test.Place(col, opponent)
		if res := test.Result(); res.Status == domain.StatusWon && res.Winner == opponent {
			return col, nil
		}
	}

	return validColumns[e.Rand.Intn(len(validColumns))], nil
}
