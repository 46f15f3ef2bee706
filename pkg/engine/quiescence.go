package engine

// quiesce extends the search past the horizon through captures only, so that
// a line is never scored in the middle of an exchange. The side to move may
// always decline to capture and keep the static evaluation (stand pat).
//
// There is no depth bound: every capture removes a piece, so a capture chain
// is at most as long as the number of pieces on the board.
func (s *searcher[M]) quiesce(side Side, alpha int, beta int) int {
	s.stats.QuiescenceNodes++
	standingPat := Evaluate(s.board, side)
	if standingPat >= beta {
		s.stats.Cutoffs++
		return beta
	}
	if alpha < standingPat {
		alpha = standingPat
	}
	for _, capture := range OrderCaptures(s.board) {
		s.board.Play(capture)
		score := -s.quiesce(side.Other(), -beta, -alpha)
		s.board.Undo(capture)
		if score >= beta {
			s.stats.Cutoffs++
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}
	return alpha
}
