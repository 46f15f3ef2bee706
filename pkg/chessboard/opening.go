package chessboard

import (
	"sync"

	"github.com/notnil/chess"
	"github.com/notnil/chess/opening"
)

var (
	ecoOnce sync.Once
	eco     *opening.BookECO
)

func book() *opening.BookECO {
	ecoOnce.Do(func() {
		eco = opening.NewBookECO()
	})
	return eco
}

// OpeningName returns the ECO title of the opening played so far in g, or an
// empty string once the game has left the book
func OpeningName(g *chess.Game) string {
	op := book().Find(g.Moves())
	if op == nil {
		return ""
	}
	return op.Title()
}
