package main

import (
	"flag"
	"fmt"
	"os"

	"yggdrasil/pkg/config"
	"yggdrasil/pkg/uci"
)

var depthFlag = flag.Int("depth", 0, "search depth in plies, overrides ENGINE_DEPTH")

func main() {
	flag.Parse()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *depthFlag > 0 {
		cfg.Engine.Depth = *depthFlag
	}
	// stdout belongs to the protocol
	logger, err := config.NewLogger(cfg.Logs, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := uci.New(cfg.Engine.Depth, os.Stdin, os.Stdout, logger).Run(); err != nil {
		logger.Fatal().Err(err).Msg("uci")
	}
}
