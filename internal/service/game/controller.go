package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/agnanachandran/connect-four/internal/domain"
	"github.com/agnanachandran/connect-four/internal/service/player"
)

// Renderer draws the live board between moves. A nil renderer plays the
// game silently, which is what the series runner wants.
type Renderer interface {
	Render(b domain.Board)
}

// badAnswerLimit bounds how often one move may be re-asked. Selectors do
// their own retrying, so hitting this means a selector is broken.
const badAnswerLimit = 3

// Controller owns the live board and alternates the two players until the
// game ends. Search and selectors only ever see snapshots; the one board
// that mutates lives here.
type Controller struct {
	board    domain.Board
	players  [2]player.Player
	turn     int
	moves    int
	renderer Renderer
}

// NewController sets up a fresh game. first moves first.
func NewController(first, second player.Player, r Renderer) *Controller {
	return &Controller{
		players:  [2]player.Player{first, second},
		renderer: r,
	}
}

// Board returns a snapshot of the live board.
func (c *Controller) Board() domain.Board {
	return c.board
}

// Moves counts the placements made so far.
func (c *Controller) Moves() int {
	return c.moves
}

// Play runs the turn loop until the game is decided and returns the final
// result. The result is recomputed from the board each pass; it is never
// cached across moves.
func (c *Controller) Play() (domain.Result, error) {
	c.render()

	badAnswers := 0
	for {
		res := c.board.Result()
		if res.Over() {
			log.Info().Msgf("game over after %d moves: %s", c.moves, res)
			return res, nil
		}

		current := c.players[c.turn]
		opponent := current.Piece.Opponent()

		col, err := current.Selector.SelectColumn(c.board, current.Piece, opponent)
		if err != nil {
			return res, fmt.Errorf("%s: selecting a column: %w", current.Name, err)
		}

		row, ok := c.place(col, current.Piece)
		if !ok {
			// selectors retry full columns themselves, so an unplayable
			// answer here is a bug in the selector
			badAnswers++
			if badAnswers >= badAnswerLimit {
				return res, fmt.Errorf("%s: returned unplayable column %d repeatedly", current.Name, col)
			}
			log.Warn().Msgf("%s answered unplayable column %d, asking again", current.Name, col)
			continue
		}

		badAnswers = 0
		c.moves++
		log.Debug().Msgf("move %d: %s drops column %d landing on row %d", c.moves, current.Name, col, row)

		c.turn = 1 - c.turn
		c.render()
	}
}

// place guards against out-of-range answers so a broken selector cannot
// panic the loop; the board itself treats those as caller bugs.
func (c *Controller) place(col int, piece domain.Piece) (int, bool) {
	if col < 0 || col >= domain.Columns {
		return -1, false
	}
	return c.board.Place(col, piece)
}

func (c *Controller) render() {
	if c.renderer == nil {
		return
	}
	c.renderer.Render(c.board)
}
