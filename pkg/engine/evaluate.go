package engine

// Material returns the white material total minus the black material total
func Material[M any](b Board[M]) int {
	total := 0
	b.ForEachPiece(func(kind PieceKind, white bool) {
		if white {
			total += pieceValues[kind]
		} else {
			total -= pieceValues[kind]
		}
	})
	return total
}

// Evaluate returns the static material balance from the perspective of side
func Evaluate[M any](b Board[M], side Side) int {
	return Material(b) * int(side)
}
