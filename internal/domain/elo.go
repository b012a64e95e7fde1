package domain

import "math"

const KFactor = 32.0

// Elo scores for a single game, from the rated player's side.
const (
	ScoreWin  = 1.0
	ScoreDraw = 0.5
	ScoreLoss = 0.0
)

// CalculateElo returns the new rating for player A.
// score is 1.0 for a win, 0.5 for a draw, and 0.0 for a loss.
func CalculateElo(ratingA, ratingB int, score float64) int {
	expectedScoreA := 1.0 / (1.0 + math.Pow(10.0, float64(ratingB-ratingA)/400.0))
	newRating := float64(ratingA) + KFactor*(score-expectedScoreA)

	if newRating < 0 {
		return 0
	}
	return int(newRating)
}

// UpdateElo applies one game to both ratings. scoreA is player A's score;
// player B implicitly scored 1-scoreA. Both updates use the pre-game
// ratings.
func UpdateElo(ratingA, ratingB int, scoreA float64) (int, int) {
	newA := CalculateElo(ratingA, ratingB, scoreA)
	newB := CalculateElo(ratingB, ratingA, 1.0-scoreA)
	return newA, newB
}
