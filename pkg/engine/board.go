package engine

// Board is the rules collaborator the search runs against. Implementations own
// legality, terminal detection and move application; the search only walks
// the tree through this contract.
//
// Play and Undo must be strictly paired. Undo must restore the exact state
// that preceded the matching Play.
type Board[M any] interface {
	// LegalMoves returns the legal moves of the side to move, or only the
	// capturing ones when capturesOnly is set
	LegalMoves(capturesOnly bool) []M
	Play(m M)
	Undo(m M)
	IsDraw() bool
	IsInCheckmate() bool
	IsWhiteToMove() bool
	// ForEachPiece calls fn once for every piece on the board
	ForEachPiece(fn func(kind PieceKind, white bool))
	IsCapture(m M) bool
	CapturedPiece(m M) PieceKind
	MovingPiece(m M) PieceKind
}

// MoveIsCheckmate reports whether playing m checkmates the opponent
func MoveIsCheckmate[M any](b Board[M], m M) bool {
	b.Play(m)
	mate := b.IsInCheckmate()
	b.Undo(m)
	return mate
}
