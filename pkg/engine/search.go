package engine

import "time"

// Stats counts the work done by one search
type Stats struct {
	Nodes           uint
	QuiescenceNodes uint
	Cutoffs         uint
	Elapsed         time.Duration
}

// searcher walks the game tree of a single board. It is used for exactly one
// search and never touches the board from more than one goroutine.
type searcher[M any] struct {
	board Board[M]
	stats Stats
}

func newSearcher[M any](b Board[M]) *searcher[M] {
	return &searcher[M]{board: b}
}

// frontier resolves the nodes that are scored without expanding children:
// draws, positions without legal moves and the horizon. If done is false the
// returned moves, in search order, still have to be expanded.
func (s *searcher[M]) frontier(depth int, side Side, alpha int, beta int) (moves []M, score int, done bool) {
	if s.board.IsDraw() {
		return nil, DrawScore, true
	}
	moves = OrderMoves(s.board)
	if len(moves) == 0 {
		if s.board.IsInCheckmate() {
			return nil, MateScore - depth, true
		}
		return nil, DrawScore, true
	}
	if depth == 0 {
		return nil, s.quiesce(side, alpha, beta), true
	}
	return moves, 0, false
}

// negamax returns the fail-hard score of the position for side: beta when a
// move refutes the window, otherwise alpha raised to the best score found
func (s *searcher[M]) negamax(depth int, side Side, alpha int, beta int) int {
	s.stats.Nodes++
	moves, score, done := s.frontier(depth, side, alpha, beta)
	if done {
		return score
	}
	best := alpha - 1
	for _, mv := range moves {
		s.board.Play(mv)
		score = -s.negamax(depth-1, side.Other(), -beta, -alpha)
		s.board.Undo(mv)
		if score > best {
			best = score
		}
		if best >= beta {
			s.stats.Cutoffs++
			return beta
		}
		if best > alpha {
			alpha = best
		}
	}
	return alpha
}

// searchRoot is negamax over the full window for the root position, with the
// move that last raised alpha returned alongside the score. found is false when
// the root is terminal or depth is zero.
func (s *searcher[M]) searchRoot(depth int, side Side) (bestMove M, score int, found bool) {
	alpha, beta := -Infinity, Infinity
	s.stats.Nodes++
	moves, score, done := s.frontier(depth, side, alpha, beta)
	if done {
		return bestMove, score, false
	}
	best := alpha - 1
	for _, mv := range moves {
		s.board.Play(mv)
		score = -s.negamax(depth-1, side.Other(), -beta, -alpha)
		s.board.Undo(mv)
		if score > best {
			best = score
		}
		if best >= beta {
			s.stats.Cutoffs++
			return bestMove, beta, found
		}
		if best > alpha {
			alpha = best
			bestMove = mv
			found = true
		}
	}
	return bestMove, alpha, found
}
