// Package uci drives the engine through the Universal Chess Interface.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"yggdrasil/pkg/chessboard"
	"yggdrasil/pkg/engine"
)

// UCI implements the Universal Chess Interface protocol.
type UCI struct {
	in    io.Reader
	out   io.Writer
	log   zerolog.Logger
	depth int

	game *chess.Game

	// engine is created at the first search of a game, playing the side to
	// move at that point
	engine *engine.Engine[*chess.Move]
}

// New creates a new UCI protocol handler searching depth plies per move.
func New(depth int, in io.Reader, out io.Writer, logger zerolog.Logger) *UCI {
	return &UCI{
		in:    in,
		out:   out,
		log:   logger,
		depth: depth,
		game:  chess.NewGame(),
	}
}

// Run reads commands until quit or the end of input.
func (u *UCI) Run() error {
	scanner := bufio.NewScanner(u.in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Fprintln(u.out, "readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			if err := u.handlePosition(args); err != nil {
				u.log.Error().Err(err).Str("command", line).Msg("invalid position")
				fmt.Fprintf(u.out, "info string %v\n", err)
			}
		case "go":
			u.handleGo(args)
		case "d":
			fmt.Fprint(u.out, u.game.Position().Board().Draw())
			fmt.Fprintf(u.out, "Fen: %s\n", u.game.Position())
		case "quit":
			return nil
		default:
			u.log.Debug().Str("command", cmd).Msg("ignoring unknown command")
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read uci input: %w", err)
	}
	return nil
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	fmt.Fprintln(u.out, "id name Yggdrasil")
	fmt.Fprintln(u.out, "id author Yggdrasil Authors")
	fmt.Fprintln(u.out, "uciok")
}

// handleNewGame forgets the engine so the next search picks its side afresh.
func (u *UCI) handleNewGame() {
	u.game = chess.NewGame()
	u.engine = nil
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("position: missing arguments")
	}

	moveStart := len(args)
	for i, arg := range args {
		if arg == "moves" {
			moveStart = i
			break
		}
	}

	var game *chess.Game
	switch args[0] {
	case "startpos":
		game = chess.NewGame()
	case "fen":
		fen := strings.Join(args[1:moveStart], " ")
		opt, err := chess.FEN(fen)
		if err != nil {
			return fmt.Errorf("position: invalid fen %q: %w", fen, err)
		}
		game = chess.NewGame(opt)
	default:
		return fmt.Errorf("position: unknown kind %q", args[0])
	}

	if moveStart < len(args) {
		for _, moveStr := range args[moveStart+1:] {
			mv, err := chess.UCINotation{}.Decode(game.Position(), moveStr)
			if err != nil {
				return fmt.Errorf("position: invalid move %q: %w", moveStr, err)
			}
			if err := game.Move(mv); err != nil {
				return fmt.Errorf("position: illegal move %q: %w", moveStr, err)
			}
		}
	}
	u.game = game
	return nil
}

type goParams struct {
	depth    int
	moveTime time.Duration
	clock    map[chess.Color]time.Duration
}

func parseGo(args []string) goParams {
	p := goParams{clock: make(map[chess.Color]time.Duration)}
	for i := 0; i+1 < len(args); i++ {
		n, err := strconv.Atoi(args[i+1])
		if err != nil {
			continue
		}
		switch args[i] {
		case "depth":
			p.depth = n
		case "movetime":
			p.moveTime = time.Duration(n) * time.Millisecond
		case "wtime":
			p.clock[chess.White] = time.Duration(n) * time.Millisecond
		case "btime":
			p.clock[chess.Black] = time.Duration(n) * time.Millisecond
		default:
			continue
		}
		i++
	}
	return p
}

// handleGo searches the current position and replies with bestmove.
func (u *UCI) handleGo(args []string) {
	params := parseGo(args)
	pos := u.game.Position()
	moves := pos.ValidMoves()
	if len(moves) == 0 {
		fmt.Fprintln(u.out, "bestmove 0000")
		return
	}

	budget := params.moveTime
	if remaining, ok := params.clock[pos.Turn()]; ok {
		if remaining <= 0 {
			u.log.Warn().Msg("clock exhausted, playing without search")
			fmt.Fprintf(u.out, "bestmove %s\n", chess.UCINotation{}.Encode(pos, moves[0]))
			return
		}
		if budget == 0 {
			budget = remaining
		}
	}

	eng := u.engineFor(engine.SideOf(pos.Turn() == chess.White))
	if params.depth > 0 && params.depth != eng.Depth() {
		eng = engine.NewEngine[*chess.Move](eng.Side(), params.depth, u.log)
	}

	board := chessboard.FromGame(u.game)
	res := eng.Search(board)
	if !res.Found {
		// the base position is drawn, any legal move will do
		fmt.Fprintf(u.out, "bestmove %s\n", chess.UCINotation{}.Encode(pos, moves[0]))
		return
	}
	u.log.Debug().Dur("budget", budget).Dur("elapsed", res.Stats.Elapsed).Msg("search completed")
	fmt.Fprintf(u.out, "info depth %d score %s nodes %d time %d\n",
		res.Depth, formatScore(res.Score, res.Depth), res.Stats.Nodes+res.Stats.QuiescenceNodes, res.Stats.Elapsed.Milliseconds())
	fmt.Fprintf(u.out, "bestmove %s\n", chess.UCINotation{}.Encode(pos, res.Move))
}

// engineFor returns the game's engine, replacing it if asked to play the
// other side
func (u *UCI) engineFor(side engine.Side) *engine.Engine[*chess.Move] {
	if u.engine == nil || u.engine.Side() != side {
		u.log.Info().Str("side", side.String()).Msg("new engine")
		u.engine = engine.NewEngine[*chess.Move](side, u.depth, u.log)
	}
	return u.engine
}

// formatScore renders a root score as "cp N" or, for forced mates, "mate N"
// in moves
func formatScore(score int, depth int) string {
	if score >= -engine.MateScore && score <= -engine.MateScore+depth {
		plies := depth - (score + engine.MateScore)
		return fmt.Sprintf("mate %d", (plies+1)/2)
	}
	if score <= engine.MateScore && score >= engine.MateScore-depth {
		plies := depth - (engine.MateScore - score)
		return fmt.Sprintf("mate -%d", plies/2)
	}
	return fmt.Sprintf("cp %d", score)
}
