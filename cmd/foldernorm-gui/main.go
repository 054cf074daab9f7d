// Command foldernorm-gui opens the graphical folder name normalizer.
//
// It accepts the same environment and flags as foldernorm; the positional
// directory, if given, is preselected in the window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/backmassage/foldernorm/internal/config"
	"github.com/backmassage/foldernorm/internal/gui"
	"github.com/backmassage/foldernorm/internal/logging"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "foldernorm-gui: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "foldernorm-gui: %v\n", err)
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "foldernorm-gui: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "foldernorm-gui: %v\n", err)
		return 1
	}
	defer log.Close()

	if err := gui.Run(&cfg, log, config.Version); err != nil {
		log.Error("%v", err)
		return 1
	}
	return 0
}
