package bot

import (
	"math"
	"time"

	"github.com/agnanachandran/connect-four/internal/domain"
)

// Strategy selects which search variant an Engine runs.
type Strategy string

const (
	StrategyMinimax   Strategy = "minimax"
	StrategyAlphaBeta Strategy = "alphabeta"
)

// Stats describes one top-level search: positions visited, subtrees pruned
// away, and wall time spent.
type Stats struct {
	Nodes   int
	Cutoffs int
	Elapsed time.Duration
}

func (s *Stats) Add(other Stats) {
	s.Nodes += other.Nodes
	s.Cutoffs += other.Cutoffs
	s.Elapsed += other.Elapsed
}

// Engine runs a fixed strategy and depth and keeps running totals across
// searches. Not safe for concurrent use; the turn loop is single-threaded.
type Engine struct {
	Strategy Strategy
	Depth    int

	totals Stats
}

func NewEngine(strategy Strategy, depth int) *Engine {
	if depth <= 0 {
		depth = DEFAULT_DEPTH
	}
	return &Engine{Strategy: strategy, Depth: depth}
}

// Search returns the column to play for self, along with the stats for
// this search alone. On a terminal position the column is -1.
func (e *Engine) Search(b domain.Board, self, opponent domain.Piece) (int, Stats) {
	st := Stats{}
	start := time.Now()

	var col int
	switch e.Strategy {
	case StrategyMinimax:
		col, _ = minimax(b, -1, e.Depth, true, self, opponent, &st)
	default:
		col, _ = alphabeta(b, -1, e.Depth, math.MinInt, math.MaxInt, true, self, opponent, &st)
	}

	st.Elapsed = time.Since(start)
	e.totals.Add(st)
	return col, st
}

// Totals reports the stats accumulated over every search so far.
func (e *Engine) Totals() Stats {
	return e.totals
}
