package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/agnanachandran/connect-four/internal/domain"
	"github.com/agnanachandran/connect-four/internal/service/player"
)

const startingRating = 1200

// SeriesConfig describes an AI-versus-AI series. The red player must hold
// the red piece and the yellow player the yellow piece; neither side may
// need a keyboard.
type SeriesConfig struct {
	Games  int
	Red    player.Player
	Yellow player.Player
}

// SeriesSummary tallies a finished series. Elo starts at 1200 for both
// sides and is updated game by game; nothing is persisted.
type SeriesSummary struct {
	Games      int
	RedWins    int
	YellowWins int
	Draws      int
	Moves      int
	RedElo     int
	YellowElo  int
}

// RunSeries plays the configured number of games back to back, alternating
// which side moves first so neither strategy keeps the first-move edge.
func RunSeries(cfg SeriesConfig) (SeriesSummary, error) {
	if cfg.Games <= 0 {
		return SeriesSummary{}, domain.Error("series needs at least one game")
	}
	if cfg.Red.Piece != domain.Red || cfg.Yellow.Piece != domain.Yellow {
		return SeriesSummary{}, domain.Error("series players must hold their own pieces")
	}
	if isInteractive(cfg.Red) || isInteractive(cfg.Yellow) {
		return SeriesSummary{}, domain.Error("series players must not be interactive")
	}

	summary := SeriesSummary{
		Games:     cfg.Games,
		RedElo:    startingRating,
		YellowElo: startingRating,
	}

	log.Info().Msgf("starting series of %d games: %s vs %s", cfg.Games, cfg.Red.Name, cfg.Yellow.Name)

	for i := 0; i < cfg.Games; i++ {
		first, second := cfg.Red, cfg.Yellow
		if i%2 == 1 {
			first, second = second, first
		}

		ctrl := NewController(first, second, nil)
		res, err := ctrl.Play()
		if err != nil {
			return summary, fmt.Errorf("game %d of %d: %w", i+1, cfg.Games, err)
		}

		summary.Moves += ctrl.Moves()

		redScore := domain.ScoreDraw
		switch {
		case res.Status == domain.StatusWon && res.Winner == domain.Red:
			summary.RedWins++
			redScore = domain.ScoreWin
		case res.Status == domain.StatusWon:
			summary.YellowWins++
			redScore = domain.ScoreLoss
		default:
			summary.Draws++
		}

		summary.RedElo, summary.YellowElo = domain.UpdateElo(summary.RedElo, summary.YellowElo, redScore)

		log.Info().Msgf("completed game %d of %d in %d moves: %s", i+1, cfg.Games, ctrl.Moves(), res)
	}

	logSearchTotals(cfg.Red)
	logSearchTotals(cfg.Yellow)
	log.Info().Msgf("completed series: red %d, yellow %d, draws %d, elo %d/%d",
		summary.RedWins, summary.YellowWins, summary.Draws, summary.RedElo, summary.YellowElo)

	return summary, nil
}

func isInteractive(p player.Player) bool {
	_, ok := p.Selector.(*player.Human)
	return ok
}

func logSearchTotals(p player.Player) {
	s, ok := p.Selector.(*player.Search)
	if !ok {
		return
	}
	totals := s.Engine.Totals()
	log.Info().Msgf("%s searched %d nodes with %d cutoffs in %s",
		p.Name, totals.Nodes, totals.Cutoffs, totals.Elapsed)
}
