package player

import (
	"github.com/rs/zerolog/log"

	"github.com/agnanachandran/connect-four/internal/domain"
	"github.com/agnanachandran/connect-four/internal/service/bot"
)

// Search delegates the move to a search engine and logs what the search
// cost. The engine keeps running totals for the series report.
type Search struct {
	Engine *bot.Engine
}

func (s *Search) SelectColumn(b domain.Board, self, opponent domain.Piece) (int, error) {
	col, st := s.Engine.Search(b, self, opponent)
	if col < 0 {
		return -1, ErrNoPlayableColumn
	}

	log.Debug().Msgf("%s %s depth %d picked column %d: %d nodes, %d cutoffs in %s",
		self, s.Engine.Strategy, s.Engine.Depth, col, st.Nodes, st.Cutoffs, st.Elapsed)

	return col, nil
}
