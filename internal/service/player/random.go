package player

import (
	"math/rand"

	"github.com/agnanachandran/connect-four/internal/domain"
)

// Random draws a column uniformly and redraws whenever the pick is full,
// so the distribution stays uniform over the playable columns.
type Random struct {
	Rand *rand.Rand
}

func (r *Random) SelectColumn(b domain.Board, self, opponent domain.Piece) (int, error) {
	if len(b.ValidMoves()) == 0 {
		return -1, ErrNoPlayableColumn
	}

	for {
		col := r.Rand.Intn(domain.Columns)
		if b.CanPlay(col) {
			return col, nil
		}
	}
}
