// Package chessboard implements the engine's board contract on top of
// github.com/notnil/chess.
package chessboard

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/notnil/chess"

	"yggdrasil/pkg/engine"
)

var pieceKinds = map[chess.PieceType]engine.PieceKind{
	chess.NoPieceType: engine.NoPiece,
	chess.Pawn:        engine.Pawn,
	chess.Knight:      engine.Knight,
	chess.Bishop:      engine.Bishop,
	chess.Rook:        engine.Rook,
	chess.Queen:       engine.Queen,
	chess.King:        engine.King,
}

// ply is one entry of the position stack
type ply struct {
	pos      *chess.Position
	move     *chess.Move // move that led here, nil for the base
	key      string
	halfmove int
}

// Board is a mutable view over immutable notnil positions. Play pushes the
// successor position, Undo pops it, so the base position is never modified.
type Board struct {
	plies []ply
	seen  *history
}

var _ engine.Board[*chess.Move] = (*Board)(nil)

// New returns a board rooted at pos
func New(pos *chess.Position) *Board {
	b := &Board{seen: newHistory()}
	key := positionKey(pos)
	b.seen.push(key)
	b.plies = append(b.plies, ply{pos: pos, key: key, halfmove: halfmoveClock(pos)})
	return b
}

// FromGame returns a board rooted at the current position of g. Earlier
// positions of the game count towards repetitions.
func FromGame(g *chess.Game) *Board {
	positions := g.Positions()
	b := New(g.Position())
	for _, pos := range positions[:len(positions)-1] {
		b.seen.push(positionKey(pos))
	}
	return b
}

// FromFEN returns a board rooted at the position described by fen
func FromFEN(fen string) (*Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	return New(chess.NewGame(opt).Position()), nil
}

func (b *Board) top() *ply {
	return &b.plies[len(b.plies)-1]
}

// Position returns the current position
func (b *Board) Position() *chess.Position {
	return b.top().pos
}

// FEN returns the current position in Forsyth-Edwards notation
func (b *Board) FEN() string {
	return b.top().pos.String()
}

// Ply returns the number of moves played on top of the base position
func (b *Board) Ply() int {
	return len(b.plies) - 1
}

// LegalMoves returns a fresh slice the caller may reorder
func (b *Board) LegalMoves(capturesOnly bool) []*chess.Move {
	valid := b.top().pos.ValidMoves()
	moves := make([]*chess.Move, 0, len(valid))
	for _, mv := range valid {
		if capturesOnly && !isCapture(mv) {
			continue
		}
		moves = append(moves, mv)
	}
	return moves
}

// Play applies m, which must be legal in the current position
func (b *Board) Play(m *chess.Move) {
	cur := b.top()
	next := cur.pos.Update(m)
	halfmove := cur.halfmove + 1
	if isCapture(m) || cur.pos.Board().Piece(m.S1()).Type() == chess.Pawn {
		halfmove = 0
	}
	key := positionKey(next)
	b.seen.push(key)
	b.plies = append(b.plies, ply{pos: next, move: m, key: key, halfmove: halfmove})
}

// Undo takes back m. Undoing anything but the last played move panics.
func (b *Board) Undo(m *chess.Move) {
	if len(b.plies) < 2 || !sameMove(b.top().move, m) {
		panic(fmt.Sprintf("chessboard: undo of %v does not match the last played move", m))
	}
	b.seen.pop(b.top().key)
	b.plies = b.plies[:len(b.plies)-1]
}

// IsDraw reports stalemate, the fifty move rule, insufficient material and
// repetitions. Inside a search a single earlier occurrence of the position is
// a draw, at the base position it takes the third occurrence.
func (b *Board) IsDraw() bool {
	cur := b.top()
	if cur.pos.Status() == chess.Stalemate {
		return true
	}
	if cur.halfmove >= 100 {
		return true
	}
	if insufficientMaterial(cur.pos.Board()) {
		return true
	}
	limit := 2
	if b.Ply() == 0 {
		limit = 3
	}
	return b.seen.count(cur.key) >= limit
}

func (b *Board) IsInCheckmate() bool {
	return b.top().pos.Status() == chess.Checkmate
}

func (b *Board) IsWhiteToMove() bool {
	return b.top().pos.Turn() == chess.White
}

func (b *Board) ForEachPiece(fn func(kind engine.PieceKind, white bool)) {
	board := b.top().pos.Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := board.Piece(sq)
		if p == chess.NoPiece {
			continue
		}
		fn(pieceKinds[p.Type()], p.Color() == chess.White)
	}
}

func (b *Board) IsCapture(m *chess.Move) bool {
	return isCapture(m)
}

// CapturedPiece returns the kind taken by m, a pawn for en passant
func (b *Board) CapturedPiece(m *chess.Move) engine.PieceKind {
	if m.HasTag(chess.EnPassant) {
		return engine.Pawn
	}
	return pieceKinds[b.top().pos.Board().Piece(m.S2()).Type()]
}

func (b *Board) MovingPiece(m *chess.Move) engine.PieceKind {
	return pieceKinds[b.top().pos.Board().Piece(m.S1()).Type()]
}

func isCapture(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

func sameMove(a, b *chess.Move) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.S1() == b.S1() && a.S2() == b.S2() && a.Promo() == b.Promo()
}

// positionKey identifies a position for repetition purposes: placement, side
// to move, castling rights and en passant square
func positionKey(pos *chess.Position) string {
	fields := strings.Fields(pos.String())
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, " ")
}

func halfmoveClock(pos *chess.Position) int {
	fields := strings.Fields(pos.String())
	if len(fields) < 5 {
		return 0
	}
	n, err := strconv.Atoi(fields[4])
	if err != nil {
		return 0
	}
	return n
}
