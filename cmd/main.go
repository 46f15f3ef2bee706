package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
	"unicode"

	tm "github.com/buger/goterm"
	"github.com/notnil/chess"
	"github.com/rs/zerolog"

	"yggdrasil/pkg/chessboard"
	"yggdrasil/pkg/config"
	"yggdrasil/pkg/engine"
)

var (
	fenFlag   = flag.String("fen", "", "start from this position instead of the initial one")
	colorFlag = flag.String("color", "", "color the engine plays (white or black), overrides ENGINE_COLOR")
	depthFlag = flag.Int("depth", 0, "search depth in plies, overrides ENGINE_DEPTH")
	clearFlag = flag.Bool("clear", true, "clear the terminal before drawing the board")
)

func main() {
	flag.Parse()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *colorFlag != "" {
		side, err := config.ParseSide(*colorFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg.Engine.Side = side
	}
	if *depthFlag > 0 {
		cfg.Engine.Depth = *depthFlag
	}
	logger, err := config.NewLogger(cfg.Logs, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	game := chess.NewGame()
	if *fenFlag != "" {
		opt, err := chess.FEN(*fenFlag)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid fen")
		}
		game = chess.NewGame(opt)
	}

	p := &player{
		game:   game,
		reader: bufio.NewReader(os.Stdin),
		engine: engine.NewEngine[*chess.Move](cfg.Engine.Side, cfg.Engine.Depth, logger),
		log:    logger,
	}
	for p.turn() {
	}
}

type player struct {
	game   *chess.Game
	reader *bufio.Reader
	engine *engine.Engine[*chess.Move]
	log    zerolog.Logger
}

// turn lets the side to move play; it returns false once the game is over
func (p *player) turn() bool {
	p.draw()
	if p.game.Outcome() != chess.NoOutcome {
		tm.Println(tm.Bold(fmt.Sprintf("Game over: %s by %s", p.game.Outcome(), p.game.Method())))
		tm.Flush()
		return false
	}
	if engine.SideOf(p.game.Position().Turn() == chess.White) == p.engine.Side() {
		return p.engineMove()
	}
	return p.humanMove()
}

func (p *player) draw() {
	if *clearFlag {
		tm.Clear()
		tm.MoveCursor(1, 1)
	}
	tm.Println(p.game.Position().Board().Draw())
	if moves := p.game.Moves(); len(moves) > 0 {
		tm.Printf("Last move: %s\n", moves[len(moves)-1])
		tm.Printf("Material (white): %d\n", engine.Material[*chess.Move](chessboard.New(p.game.Position())))
	}
	if name := chessboard.OpeningName(p.game); name != "" {
		tm.Println(tm.Color(name, tm.CYAN))
	}
	tm.Flush()
}

func (p *player) engineMove() bool {
	start := time.Now()
	board := chessboard.FromGame(p.game)
	mv, ok := p.engine.ChooseMove(board, 0)
	if !ok {
		tm.Println(tm.Bold("Engine has no move, the game is drawn"))
		tm.Flush()
		return false
	}
	if engine.MoveIsCheckmate[*chess.Move](board, mv) {
		p.log.Info().Str("move", mv.String()).Msg("engine announces checkmate")
	}
	if err := p.game.Move(mv); err != nil {
		p.log.Fatal().Err(err).Str("move", mv.String()).Msg("engine produced an illegal move")
	}
	p.log.Info().Str("move", mv.String()).Dur("elapsed", time.Since(start)).Msg("engine played")
	return true
}

func (p *player) humanMove() bool {
	for {
		tm.Print("Your move: ")
		tm.Flush()
		text, err := p.reader.ReadString('\n')
		if err != nil {
			return false
		}
		inp := spaceMap(text)
		if inp == "quit" {
			return false
		}
		if err := p.play(inp); err != nil {
			tm.Println(tm.Color(fmt.Sprintf("Your input was invalid, error: %v", err), tm.RED))
			tm.Flush()
			continue
		}
		return true
	}
}

// play accepts standard algebraic or UCI notation
func (p *player) play(inp string) error {
	if err := p.game.MoveStr(inp); err == nil {
		return nil
	}
	mv, err := chess.UCINotation{}.Decode(p.game.Position(), strings.ToLower(inp))
	if err != nil {
		return err
	}
	return p.game.Move(mv)
}

func spaceMap(str string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, str)
}
