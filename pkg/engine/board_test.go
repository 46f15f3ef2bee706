package engine

import "fmt"

type fakePiece struct {
	kind  PieceKind
	white bool
}

// node is a hand-built game tree position. captured and mover describe the
// move leading into the node.
type node struct {
	name     string
	children []*node
	draw     bool
	mate     bool
	pieces   []fakePiece
	captured PieceKind
	mover    PieceKind
}

func (n *node) String() string { return n.name }

// pawns returns material worth n*100 for white, or for black when n < 0
func pawns(n int) []fakePiece {
	white := n > 0
	if n < 0 {
		n = -n
	}
	pieces := make([]fakePiece, n)
	for i := range pieces {
		pieces[i] = fakePiece{kind: Pawn, white: white}
	}
	return pieces
}

// leaf is a quiet position with material balance m pawns. It has one quiet
// move so the search does not mistake it for a stalemate.
func leaf(name string, m int) *node {
	return &node{
		name:     name,
		pieces:   pawns(m),
		children: []*node{{name: name + "-quiet", pieces: pawns(m)}},
	}
}

func quiet(name string, children ...*node) *node {
	return &node{name: name, children: children}
}

// fakeBoard walks a node tree, the path holding the current line
type fakeBoard struct {
	path      []*node
	whiteRoot bool
	plays     int
}

var _ Board[*node] = (*fakeBoard)(nil)

func newFakeBoard(root *node, whiteToMove bool) *fakeBoard {
	return &fakeBoard{path: []*node{root}, whiteRoot: whiteToMove}
}

func (b *fakeBoard) cur() *node { return b.path[len(b.path)-1] }

func (b *fakeBoard) LegalMoves(capturesOnly bool) []*node {
	var moves []*node
	for _, c := range b.cur().children {
		if capturesOnly && c.captured == NoPiece {
			continue
		}
		moves = append(moves, c)
	}
	return moves
}

func (b *fakeBoard) Play(m *node) {
	for _, c := range b.cur().children {
		if c == m {
			b.path = append(b.path, m)
			b.plays++
			return
		}
	}
	panic(fmt.Sprintf("%v is not a move from %v", m, b.cur()))
}

func (b *fakeBoard) Undo(m *node) {
	if len(b.path) < 2 || b.cur() != m {
		panic(fmt.Sprintf("undo of %v does not match %v", m, b.cur()))
	}
	b.path = b.path[:len(b.path)-1]
	b.plays--
}

func (b *fakeBoard) IsDraw() bool        { return b.cur().draw }
func (b *fakeBoard) IsInCheckmate() bool { return b.cur().mate }

func (b *fakeBoard) IsWhiteToMove() bool {
	return b.whiteRoot == ((len(b.path)-1)%2 == 0)
}

func (b *fakeBoard) ForEachPiece(fn func(kind PieceKind, white bool)) {
	for _, p := range b.cur().pieces {
		fn(p.kind, p.white)
	}
}

func (b *fakeBoard) IsCapture(m *node) bool          { return m.captured != NoPiece }
func (b *fakeBoard) CapturedPiece(m *node) PieceKind { return m.captured }
func (b *fakeBoard) MovingPiece(m *node) PieceKind   { return m.mover }
