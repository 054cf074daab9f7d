// Command foldernorm is the CLI entrypoint for the folder name normalizer.
//
// It loads configuration (defaults, environment, flags) and then runs one
// of: system diagnostics (--check), the example table (--examples), the
// interactive text menu (--menu), or a preview of the target directory that
// renames on --apply.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/backmassage/foldernorm/internal/check"
	"github.com/backmassage/foldernorm/internal/config"
	"github.com/backmassage/foldernorm/internal/display"
	"github.com/backmassage/foldernorm/internal/logging"
	"github.com/backmassage/foldernorm/internal/menu"
	"github.com/backmassage/foldernorm/internal/naming"
	"github.com/backmassage/foldernorm/internal/pipeline"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Bootstrap: no logger yet, so errors go straight to stderr.
	cfg := config.DefaultConfig()
	if err := config.ApplyEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "foldernorm: %v\n", err)
		return 1
	}
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) || errors.Is(err, config.ErrVersion) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "foldernorm: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'foldernorm --help' for usage.")
		return 1
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "foldernorm: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "foldernorm: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout, config.Version)

	switch {
	case cfg.CheckOnly:
		if !check.RunCheck(&cfg, log) {
			return 1
		}
		return 0

	case cfg.ShowExamples:
		log.Info("Examples with the current options:")
		fmt.Println()
		menu.WriteExamples(os.Stdout, naming.RenderExamples(cfg.NormalizationOptions(), nil))
		return 0

	case cfg.Menu:
		m, err := menu.New(&cfg, log, os.Stdin, os.Stdout)
		if err != nil {
			log.Error("%v", err)
			return 1
		}
		if err := m.Run(); err != nil {
			log.Error("%v", err)
			return 1
		}
		return 0
	}

	if log.FilePath() != "" {
		log.Info("Logging to %s", log.FilePath())
	}
	if cfg.Apply && cfg.DiskConflictsOnly {
		log.Warn("In-batch conflict detection is off; colliding renames fail at commit time")
	}

	stdin := bufio.NewReader(os.Stdin)
	stats, err := pipeline.Run(&cfg, log, os.Stdout, func(q string) bool {
		return menu.Confirm(stdin, os.Stdout, q)
	})
	if err != nil || stats.Failed > 0 {
		return 1
	}
	return 0
}
