package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/notnil/chess"

	"yggdrasil/pkg/chessboard"
	"yggdrasil/pkg/config"
	"yggdrasil/pkg/engine"
)

var (
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to file")
	fenFlag    = flag.String("fen", "5B2/PP1k2P1/p3pr1p/7p/1p2p3/8/3K2Rn/4r3 w - - 0 1", "position to search")
	depthFlag  = flag.Int("depth", engine.DefaultDepth, "search depth in plies")
)

func main() {
	flag.Parse()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := config.NewLogger(cfg.Logs, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Setup Profiling
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			logger.Fatal().Err(err).Msg("create cpu profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Fatal().Err(err).Msg("start cpu profile")
		}
		defer pprof.StopCPUProfile()
	}

	board, err := chessboard.FromFEN(*fenFlag)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid position")
	}
	eng := engine.NewEngine[*chess.Move](engine.SideOf(board.IsWhiteToMove()), *depthFlag, logger)

	fmt.Println("----BEGIN YGGDRASIL BENCHMARK----")
	res := eng.Search(board)
	nodes := res.Stats.Nodes + res.Stats.QuiescenceNodes
	fmt.Printf("Move:%v Score:%v Depth:%v\n", res.Move, res.Score, res.Depth)
	fmt.Printf("Nodes:%v QuiescenceNodes:%v Cutoffs:%v\n", res.Stats.Nodes, res.Stats.QuiescenceNodes, res.Stats.Cutoffs)
	fmt.Printf("Search Completed in %vms\n", res.Stats.Elapsed.Milliseconds())
	if secs := res.Stats.Elapsed.Seconds(); secs > 0 {
		fmt.Printf("That Makes %.0f Nodes per second\n", float64(nodes)/secs)
	}
	fmt.Println("----END  YGGDRASIL  BENCHMARK----")
}
