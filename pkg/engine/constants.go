package engine

// Infinity bounds the full search window; no reachable score gets near it
const Infinity = 100000000

// MateScore is the score of being checkmated with no search depth remaining.
// Mates found with more depth remaining score lower, so faster mates are preferred
const MateScore = -1000000

// DrawScore is returned for draws and stalemates
const DrawScore = 0

// DefaultDepth is the fixed search depth in plies
const DefaultDepth = 5

// Side is the side sign used to orient evaluations, +1 for white and -1 for black
type Side int

const (
	White Side = 1
	Black Side = -1
)

// SideOf returns the side sign for a color
func SideOf(white bool) Side {
	if white {
		return White
	}
	return Black
}

// Other returns the opposing side
func (s Side) Other() Side {
	return -s
}

func (s Side) String() string {
	if s == White {
		return "white"
	}
	return "black"
}

// PieceKind identifies a piece independently of its color
type PieceKind int

const (
	NoPiece PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

// pieceValues holds the material value of every piece kind. The king carries
// no material, checkmate is scored by the search itself
var pieceValues = map[PieceKind]int{
	NoPiece: 0,
	Pawn:    100,
	Knight:  300,
	Bishop:  300,
	Rook:    500,
	Queen:   900,
	King:    0,
}

// Value returns the material value of a piece kind
func Value(k PieceKind) int {
	return pieceValues[k]
}
