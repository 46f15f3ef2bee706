package chessboard

import "github.com/notnil/chess"

// history counts how often each position key has been reached along the
// current line, including the game that led to the base position
type history struct {
	counts map[string]int
}

func newHistory() *history {
	return &history{counts: make(map[string]int)}
}

func (h *history) push(key string) {
	h.counts[key]++
}

func (h *history) pop(key string) {
	h.counts[key]--
	if h.counts[key] <= 0 {
		delete(h.counts, key)
	}
}

func (h *history) count(key string) int {
	return h.counts[key]
}

// insufficientMaterial reports positions where neither side can mate: bare
// kings, a single minor piece, or one bishop each on the same square color
func insufficientMaterial(board *chess.Board) bool {
	type bishop struct {
		color  chess.Color
		square int
	}
	minors := 0
	var bishops []bishop
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		switch p.Type() {
		case chess.NoPieceType, chess.King:
			continue
		case chess.Knight:
			minors++
		case chess.Bishop:
			minors++
			bishops = append(bishops, bishop{color: p.Color(), square: (int(sq.File()) + int(sq.Rank())) % 2})
		default:
			return false
		}
	}
	switch minors {
	case 0, 1:
		return true
	case 2:
		return len(bishops) == 2 &&
			bishops[0].color != bishops[1].color &&
			bishops[0].square == bishops[1].square
	}
	return false
}
