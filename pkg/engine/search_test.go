package engine

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNegamaxDrawIsZero(t *testing.T) {
	root := quiet("root", leaf("a", 3), leaf("b", -2))
	root.draw = true
	windows := [][2]int{{-Infinity, Infinity}, {-50, 50}, {100, 200}, {-300, -200}}
	for depth := 0; depth <= 4; depth++ {
		for _, w := range windows {
			s := newSearcher[*node](newFakeBoard(root, true))
			if got := s.negamax(depth, White, w[0], w[1]); got != DrawScore {
				t.Errorf("negamax(depth=%d, window=%v) = %d, want %d", depth, w, got, DrawScore)
			}
		}
	}
}

func TestNegamaxCheckmateFavoursFasterMates(t *testing.T) {
	root := &node{name: "mated", mate: true}
	prev := 0
	for depth := 0; depth <= 6; depth++ {
		s := newSearcher[*node](newFakeBoard(root, true))
		got := s.negamax(depth, White, -Infinity, Infinity)
		if got != MateScore-depth {
			t.Errorf("negamax(depth=%d) = %d, want %d", depth, got, MateScore-depth)
		}
		if got > MateScore {
			t.Errorf("negamax(depth=%d) = %d is above MateScore", depth, got)
		}
		if depth > 0 && got >= prev {
			t.Errorf("negamax(depth=%d) = %d, want below %d", depth, got, prev)
		}
		prev = got
	}
}

func TestNegamaxStalemateIsZero(t *testing.T) {
	root := &node{name: "stalemate", pieces: pawns(5)}
	for depth := 0; depth <= 4; depth++ {
		s := newSearcher[*node](newFakeBoard(root, true))
		if got := s.negamax(depth, White, -Infinity, Infinity); got != DrawScore {
			t.Errorf("negamax(depth=%d) = %d, want %d", depth, got, DrawScore)
		}
	}
}

// minimaxTree has root values a = -1, b = +1, c = -5 pawns for white
func minimaxTree() *node {
	return quiet("root",
		quiet("a", leaf("a1", 3), leaf("a2", -1)),
		quiet("b", leaf("b1", 3), leaf("b2", 1)),
		quiet("c", leaf("c1", -5), leaf("c2", 4)),
	)
}

func TestSearchRootPicksMinimaxMove(t *testing.T) {
	b := newFakeBoard(minimaxTree(), true)
	s := newSearcher[*node](b)
	move, score, found := s.searchRoot(2, White)
	if !found {
		t.Fatal("searchRoot found no move")
	}
	if move.name != "b" || score != 100 {
		t.Errorf("searchRoot = (%v, %d), want (b, 100)", move, score)
	}
	if s.stats.Cutoffs == 0 {
		t.Error("expected the refutation of c to cut off")
	}
	if b.plays != 0 || len(b.path) != 1 {
		t.Errorf("board not restored: plays=%d path=%d", b.plays, len(b.path))
	}
}

func TestSearchRootAsBlack(t *testing.T) {
	// black picks the line minimizing white's material
	b := newFakeBoard(minimaxTree(), false)
	s := newSearcher[*node](b)
	move, score, found := s.searchRoot(2, Black)
	if !found {
		t.Fatal("searchRoot found no move")
	}
	// black replies maximize white's material: a = 3, b = 3, c = 4
	if move.name != "a" || score != -300 {
		t.Errorf("searchRoot = (%v, %d), want (a, -300)", move, score)
	}
}

func TestSearchRootFindsMate(t *testing.T) {
	root := quiet("root",
		leaf("quiet", 1),
		&node{name: "mate", mate: true},
	)
	s := newSearcher[*node](newFakeBoard(root, true))
	move, score, found := s.searchRoot(1, White)
	if !found || move.name != "mate" {
		t.Fatalf("searchRoot = (%v, %v), want mate", move, found)
	}
	if score != -MateScore {
		t.Errorf("score = %d, want %d", score, -MateScore)
	}
}

func TestSearchRootTerminal(t *testing.T) {
	tests := []struct {
		name  string
		root  *node
		depth int
		score int
	}{
		{"draw", &node{draw: true, children: []*node{leaf("a", 1)}}, 3, DrawScore},
		{"checkmate", &node{mate: true}, 3, MateScore - 3},
		{"stalemate", &node{}, 3, DrawScore},
		{"horizon", quiet("root", leaf("a", 1)), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newSearcher[*node](newFakeBoard(tt.root, true))
			_, score, found := s.searchRoot(tt.depth, White)
			if found {
				t.Error("searchRoot found a move in a terminal root")
			}
			if score != tt.score {
				t.Errorf("score = %d, want %d", score, tt.score)
			}
		})
	}
}

func TestEngineChooseMove(t *testing.T) {
	b := newFakeBoard(minimaxTree(), true)
	eng := NewEngine[*node](White, 2, zerolog.Nop())
	move, ok := eng.ChooseMove(b, 0)
	if !ok || move.name != "b" {
		t.Errorf("ChooseMove = (%v, %v), want (b, true)", move, ok)
	}
	if b.plays != 0 || len(b.path) != 1 {
		t.Errorf("board not restored: plays=%d path=%d", b.plays, len(b.path))
	}
}

func TestEngineChooseMoveNoMoves(t *testing.T) {
	eng := NewEngine[*node](White, 3, zerolog.Nop())
	if _, ok := eng.ChooseMove(newFakeBoard(&node{mate: true}, true), 0); ok {
		t.Error("ChooseMove reported a move in a mated position")
	}
}

func TestNewEngineDepth(t *testing.T) {
	if got := NewEngine[*node](Black, 0, zerolog.Nop()).Depth(); got != DefaultDepth {
		t.Errorf("Depth = %d, want %d", got, DefaultDepth)
	}
	eng := NewEngine[*node](Black, 3, zerolog.Nop())
	if eng.Depth() != 3 || eng.Side() != Black {
		t.Errorf("engine = (%d, %v), want (3, black)", eng.Depth(), eng.Side())
	}
}

func TestMoveIsCheckmate(t *testing.T) {
	mate := &node{name: "mate", mate: true}
	other := leaf("other", 0)
	b := newFakeBoard(quiet("root", other, mate), true)
	if !MoveIsCheckmate[*node](b, mate) {
		t.Error("MoveIsCheckmate(mate) = false")
	}
	if MoveIsCheckmate[*node](b, other) {
		t.Error("MoveIsCheckmate(other) = true")
	}
	if len(b.path) != 1 {
		t.Error("board not restored")
	}
}

func TestSearchWarnsWhenNotToMove(t *testing.T) {
	tests := []struct {
		name  string
		white bool
		warn  bool
	}{
		{"engine to move", true, false},
		{"opponent to move", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			eng := NewEngine[*node](White, 2, zerolog.New(&buf))
			eng.Search(newFakeBoard(minimaxTree(), tt.white))
			if got := strings.Contains(buf.String(), "not to move"); got != tt.warn {
				t.Errorf("warning logged = %v, want %v: %s", got, tt.warn, buf.String())
			}
		})
	}
}
