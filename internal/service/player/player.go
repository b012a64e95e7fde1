package player

import (
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/agnanachandran/connect-four/internal/domain"
	"github.com/agnanachandran/connect-four/internal/service/bot"
)

// MoveSelector produces the next column for the side playing self. The
// board is a snapshot; selectors never mutate shared state, so the same
// selector can be asked again after a rejected answer.
type MoveSelector interface {
	SelectColumn(b domain.Board, self, opponent domain.Piece) (int, error)
}

// Player ties a piece to the strategy that moves it.
type Player struct {
	Name     string
	Piece    domain.Piece
	Selector MoveSelector
}

// Mode names a selector configuration the way flags and env vars spell it.
type Mode string

const (
	ModeHuman     Mode = "human"
	ModeRandom    Mode = "random"
	ModeEasy      Mode = "easy"
	ModeMinimax   Mode = "minimax"
	ModeAlphaBeta Mode = "alphabeta"
)

const (
	ErrUnknownMode      = domain.Error("unknown player mode")
	ErrNoPlayableColumn = domain.Error("no playable column")
)

func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeHuman:
		return ModeHuman, nil
	case ModeRandom:
		return ModeRandom, nil
	case ModeEasy:
		return ModeEasy, nil
	case ModeMinimax:
		return ModeMinimax, nil
	case ModeAlphaBeta:
		return ModeAlphaBeta, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// IsInteractive reports whether the mode needs a human at the keyboard.
func (m Mode) IsInteractive() bool {
	return m == ModeHuman
}

// Options carries the dependencies a selector may need. Prompter and
// Feedback only matter for human mode; Rand seeds the random tiers and
// defaults to a time-seeded source; Depth configures the search tiers.
type Options struct {
	Prompter ColumnPrompter
	Feedback io.Writer
	Rand     *rand.Rand
	Depth    int
}

// NewSelector builds the selector for mode from the given options.
func NewSelector(mode Mode, opts Options) (MoveSelector, error) {
	switch mode {
	case ModeHuman:
		if opts.Prompter == nil {
			return nil, domain.Error("human mode needs a column prompter")
		}
		feedback := opts.Feedback
		if feedback == nil {
			feedback = io.Discard
		}
		return &Human{Prompter: opts.Prompter, Feedback: feedback}, nil
	case ModeRandom:
		return &Random{Rand: ensureRand(opts.Rand)}, nil
	case ModeEasy:
		return &Easy{Rand: ensureRand(opts.Rand)}, nil
	case ModeMinimax:
		return &Search{Engine: bot.NewEngine(bot.StrategyMinimax, opts.Depth)}, nil
	case ModeAlphaBeta:
		return &Search{Engine: bot.NewEngine(bot.StrategyAlphaBeta, opts.Depth)}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}

func ensureRand(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
