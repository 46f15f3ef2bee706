package engine

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Engine is a fixed depth negamax player for one side of one game
type Engine[M any] struct {
	side  Side
	depth int
	log   zerolog.Logger
}

// Result is the outcome of a root search
type Result[M any] struct {
	Move  M
	Found bool
	Score int
	Depth int
	Stats Stats
}

// NewEngine returns an engine playing side, searching depth plies deep.
// A depth below one falls back to DefaultDepth.
func NewEngine[M any](side Side, depth int, logger zerolog.Logger) *Engine[M] {
	if depth < 1 {
		depth = DefaultDepth
	}
	return &Engine[M]{
		side:  side,
		depth: depth,
		log:   logger.With().Str("side", side.String()).Logger(),
	}
}

// Side returns the side the engine plays
func (e *Engine[M]) Side() Side {
	return e.side
}

// Depth returns the search depth in plies
func (e *Engine[M]) Depth() int {
	return e.depth
}

// Search runs a full window search of b from the engine's perspective.
// b is restored to its original state before Search returns.
func (e *Engine[M]) Search(b Board[M]) Result[M] {
	if SideOf(b.IsWhiteToMove()) != e.side {
		e.log.Warn().Msg("searching a position where the engine is not to move")
	}
	start := time.Now()
	s := newSearcher(b)
	move, score, found := s.searchRoot(e.depth, e.side)
	s.stats.Elapsed = time.Since(start)
	return Result[M]{Move: move, Found: found, Score: score, Depth: e.depth, Stats: s.stats}
}

// ChooseMove picks the move to play in b. The budget is informational only, the
// caller decides whether there is time to search at all. The returned bool is
// false when the position has no move to play.
func (e *Engine[M]) ChooseMove(b Board[M], budget time.Duration) (M, bool) {
	res := e.Search(b)
	if !res.Found {
		e.log.Warn().Int("score", res.Score).Msg("no move found")
		return res.Move, false
	}
	e.log.Debug().
		Str("move", fmt.Sprint(res.Move)).
		Int("score", res.Score).
		Int("depth", res.Depth).
		Uint("nodes", res.Stats.Nodes).
		Uint("qnodes", res.Stats.QuiescenceNodes).
		Uint("cutoffs", res.Stats.Cutoffs).
		Dur("elapsed", res.Stats.Elapsed).
		Dur("budget", budget).
		Msg("search completed")
	return res.Move, true
}
