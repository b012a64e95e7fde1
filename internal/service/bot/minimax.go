package bot

import (
	"math"

	"github.com/agnanachandran/connect-four/internal/domain"
)

const DEFAULT_DEPTH = 4

// Minimax picks the column with the best evaluation after exploring every
// line of play depth moves deep. maxPiece is the side the score favors;
// maximizing says whose turn it is at this node. The returned column is the
// move to make, or -1 when the position is already terminal.
func Minimax(b domain.Board, depth int, maximizing bool, maxPiece, minPiece domain.Piece) (int, int) {
	var st Stats
	return minimax(b, -1, depth, maximizing, maxPiece, minPiece, &st)
}

// MinimaxAlphaBeta behaves exactly like Minimax for any input, pruning
// subtrees that cannot influence the outcome. Callers start the window at
// (math.MinInt, math.MaxInt).
func MinimaxAlphaBeta(b domain.Board, depth, alpha, beta int, maximizing bool, maxPiece, minPiece domain.Piece) (int, int) {
	var st Stats
	return alphabeta(b, -1, depth, alpha, beta, maximizing, maxPiece, minPiece, &st)
}

// minimax carries fromCol, the column whose drop produced b, so terminal
// nodes can report which move led to them. Each child gets its own board
// copy; nothing is shared between branches.
func minimax(b domain.Board, fromCol, depth int, maximizing bool, maxPiece, minPiece domain.Piece, st *Stats) (int, int) {
	st.Nodes++

	if depth == 0 || b.Result().Over() {
		return fromCol, Evaluate(b, maxPiece, minPiece)
	}

	validColumns := b.ValidMoves()
	if len(validColumns) == 0 {
		return fromCol, Evaluate(b, maxPiece, minPiece)
	}

	piece := maxPiece
	if !maximizing {
		piece = minPiece
	}

	bestCol := fromCol
	if maximizing {
		bestScore := math.MinInt
		for _, col := range validColumns {
			child := b.Copy()
			child.Place(col, piece)

			_, score := minimax(child, col, depth-1, false, maxPiece, minPiece, st)
			if score > bestScore {
				bestScore = score
				bestCol = col
			}
		}
		return bestCol, bestScore
	}

	bestScore := math.MaxInt
	for _, col := range validColumns {
		child := b.Copy()
		child.Place(col, piece)

		_, score := minimax(child, col, depth-1, true, maxPiece, minPiece, st)
		if score < bestScore {
			bestScore = score
			bestCol = col
		}
	}
	return bestCol, bestScore
}

func alphabeta(b domain.Board, fromCol, depth, alpha, beta int, maximizing bool, maxPiece, minPiece domain.Piece, st *Stats) (int, int) {
	st.Nodes++

	if depth == 0 || b.Result().Over() {
		return fromCol, Evaluate(b, maxPiece, minPiece)
	}

	validColumns := b.ValidMoves()
	if len(validColumns) == 0 {
		return fromCol, Evaluate(b, maxPiece, minPiece)
	}

	piece := maxPiece
	if !maximizing {
		piece = minPiece
	}

	bestCol := fromCol
	if maximizing {
		bestScore := math.MinInt
		for _, col := range validColumns {
			child := b.Copy()
			child.Place(col, piece)

			_, score := alphabeta(child, col, depth-1, alpha, beta, false, maxPiece, minPiece, st)
			if score > bestScore {
				bestScore = score
				bestCol = col
			}
			alpha = max(alpha, bestScore)

			if alpha >= beta {
				st.Cutoffs++
				break // beta cutoff
			}
		}
		return bestCol, bestScore
	}

	bestScore := math.MaxInt
	for _, col := range validColumns {
		child := b.Copy()
		child.Place(col, piece)

		_, score := alphabeta(child, col, depth-1, alpha, beta, true, maxPiece, minPiece, st)
		if score < bestScore {
			bestScore = score
			bestCol = col
		}
		beta = min(beta, bestScore)

		if beta <= alpha {
			st.Cutoffs++
			break // alpha cutoff
		}
	}
	return bestCol, bestScore
}
