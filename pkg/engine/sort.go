package engine

import "sort"

// byPriority orders moves by descending score. Used with sort.Stable so that
// moves of equal priority keep the order the board generated them in.
type byPriority[M any] struct {
	moves  []M
	scores []int
}

func (a byPriority[M]) Len() int { return len(a.moves) }
func (a byPriority[M]) Swap(i, j int) {
	a.moves[i], a.moves[j] = a.moves[j], a.moves[i]
	a.scores[i], a.scores[j] = a.scores[j], a.scores[i]
}
func (a byPriority[M]) Less(i, j int) bool { return a.scores[i] > a.scores[j] }

// OrderMoves returns every legal move with captures ahead of quiet moves
func OrderMoves[M any](b Board[M]) []M {
	moves := b.LegalMoves(false)
	scores := make([]int, len(moves))
	for i, mv := range moves {
		if b.IsCapture(mv) {
			scores[i] = 1
		}
	}
	sort.Stable(byPriority[M]{moves: moves, scores: scores})
	return moves
}

// OrderCaptures returns the legal captures, most valuable victim and least
// valuable attacker first
func OrderCaptures[M any](b Board[M]) []M {
	moves := b.LegalMoves(true)
	scores := make([]int, len(moves))
	for i, mv := range moves {
		scores[i] = captureValue(b, mv)
	}
	sort.Stable(byPriority[M]{moves: moves, scores: scores})
	return moves
}

// captureValue is the victim's value minus the attacker's value
func captureValue[M any](b Board[M], mv M) int {
	return pieceValues[b.CapturedPiece(mv)] - pieceValues[b.MovingPiece(mv)]
}
