package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into normalization, behavior, output, display, and utility.
// Negated flags (e.g. --no-lowercase) are applied after Parse so Config defaults hold unless set.

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Version is shown in --version and help; override at build time with
// -ldflags "-X github.com/backmassage/foldernorm/internal/config.Version=...".
var Version = "1.0.0-dev"

// ErrVersion is returned by ParseFlags after printing the version.
// Help returns flag.ErrHelp after printing usage. Callers exit 0 on both.
var ErrVersion = errors.New("version requested")

// Usage is where help text is written.
var Usage io.Writer = os.Stderr

// ParseFlags parses args (without the program name) into cfg.
// On error it returns non-nil (e.g. unknown flag, too many positional args).
func ParseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("foldernorm", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printUsage(Usage) }

	// Negated/override flags: we capture bools then apply to cfg after Parse,
	// so that defaults from DefaultConfig() hold unless the user passes the flag.
	var negated negatedFlags

	defineNormalizationFlags(fs, cfg, &negated)
	defineBehaviorFlags(fs, cfg)
	defineOutputFlags(fs, cfg)
	defineDisplayFlags(fs, cfg, &negated)
	defineUtilityFlags(fs, &negated)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(Usage)
		}
		return err
	}

	applyNegatedFlags(cfg, &negated)

	if negated.showHelp {
		printUsage(Usage)
		return flag.ErrHelp
	}
	if negated.showVersion {
		fmt.Fprintln(os.Stdout, "foldernorm v"+Version)
		return ErrVersion
	}

	return parsePositionalArgs(fs, cfg)
}

// negatedFlags holds boolean flags that are applied after Parse.
// These either invert a default (e.g. noLowercase -> Lowercase=false) or trigger exit (showHelp, showVersion).
type negatedFlags struct {
	noLowercase bool
	keepAccents bool
	keepSpaces  bool
	keepSpecial bool
	noNumbers   bool
	forceColor  bool
	noColor     bool
	showVersion bool
	showHelp    bool
}

// defineNormalizationFlags registers the switches that feed naming.Options.
func defineNormalizationFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.noLowercase, "no-lowercase", false, "Keep letter case")
	fs.BoolVar(&n.keepAccents, "keep-accents", false, "Do not strip accents")
	fs.BoolVar(&n.keepSpaces, "keep-spaces", false, "Do not replace whitespace with '_'")
	fs.BoolVar(&n.keepSpecial, "keep-special", false, "Do not replace special characters")
	fs.BoolVar(&n.noNumbers, "no-numbers", false, "Treat digits as special characters")
	fs.BoolVar(&cfg.PreserveDots, "dots", false, "Keep '.' in names")
}

// defineBehaviorFlags registers apply, yes, menu, examples, disk-conflicts-only.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVar(&cfg.Apply, "apply", false, "Rename after preview")
	fs.BoolVar(&cfg.Apply, "a", false, "Same as --apply")
	fs.BoolVar(&cfg.AssumeYes, "yes", false, "Do not ask for confirmation")
	fs.BoolVar(&cfg.AssumeYes, "y", false, "Same as --yes")
	fs.BoolVar(&cfg.Menu, "menu", false, "Interactive text menu")
	fs.BoolVar(&cfg.Menu, "m", false, "Same as --menu")
	fs.BoolVar(&cfg.ShowExamples, "examples", false, "Show example transformations and exit")
	fs.BoolVar(&cfg.ShowExamples, "e", false, "Same as --examples")
	fs.BoolVar(&cfg.DiskConflictsOnly, "disk-conflicts-only", false, "Check targets against disk only")
}

// defineOutputFlags registers --report and --journal.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.ReportPath, "report", cfg.ReportPath, "Write preview/outcomes to .xlsx or .csv")
	fs.StringVar(&cfg.JournalPath, "journal", cfg.JournalPath, "Record committed batches in SQLite")
}

// defineDisplayFlags registers --color, --no-color, verbose, --check, --log.
func defineDisplayFlags(fs *flag.FlagSet, cfg *Config, n *negatedFlags) {
	fs.BoolVar(&n.forceColor, "color", false, "Force colored logs")
	fs.BoolVar(&n.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as --verbose")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run diagnostics and exit")
	fs.BoolVar(&cfg.CheckOnly, "c", false, "Same as --check")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.StringVar(&cfg.LogFile, "l", cfg.LogFile, "Same as --log")
}

// defineUtilityFlags registers --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, n *negatedFlags) {
	fs.BoolVar(&n.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&n.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&n.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&n.showHelp, "h", false, "Same as --help")
}

// applyNegatedFlags copies negated and override flag values into cfg (e.g. keepAccents -> RemoveAccents=false).
func applyNegatedFlags(cfg *Config, n *negatedFlags) {
	if n.noLowercase {
		cfg.Lowercase = false
	}
	if n.keepAccents {
		cfg.RemoveAccents = false
	}
	if n.keepSpaces {
		cfg.ReplaceSpaces = false
	}
	if n.keepSpecial {
		cfg.RemoveSpecial = false
	}
	if n.noNumbers {
		cfg.PreserveNumbers = false
	}
	if n.noColor {
		cfg.ColorMode = ColorNever
	} else if n.forceColor {
		cfg.ColorMode = ColorAlways
	}
}

// parsePositionalArgs sets Dir from the optional positional arg.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	switch len(args) {
	case 0:
		return nil
	case 1:
		cfg.Dir = NormalizeDirArg(args[0])
		return nil
	default:
		return fmt.Errorf("expected at most one directory, got %d", len(args))
	}
}

// printUsage writes the help text to w. Column-aligned for readability.
func printUsage(w io.Writer) {
	const col1 = 28 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "foldernorm v" + Version + ": normalize folder names"},
		{"", ""},
		{"  foldernorm [OPTIONS] [directory]", ""},
		{"", ""},
		{"Normalization", ""},
		{"  --no-lowercase", "Keep letter case"},
		{"  --keep-accents", "Do not strip accents"},
		{"  --keep-spaces", "Do not replace whitespace with '_'"},
		{"  --keep-special", "Do not replace special characters"},
		{"  --no-numbers", "Treat digits as special characters"},
		{"  --dots", "Keep '.' in names (default: off)"},
		{"", ""},
		{"Behavior", ""},
		{"  -a, --apply", "Rename after preview (default: preview only)"},
		{"  -y, --yes", "Do not ask for confirmation (needs --apply)"},
		{"  -m, --menu", "Interactive text menu"},
		{"  -e, --examples", "Show example transformations and exit"},
		{"  --disk-conflicts-only", "Check targets against disk only"},
		{"", ""},
		{"Output", ""},
		{"  --report <path>", "Write preview/outcomes (.xlsx or .csv)"},
		{"  --journal <path>", "Record committed batches (SQLite)"},
		{"", ""},
		{"Display", ""},
		{"  --color", "Force colored logs"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  -c, --check", "Diagnostics for the target directory"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Environment", ""},
		{"  " + EnvDir, "Default target directory"},
		{"  " + EnvLog, "Default log file"},
		{"  " + EnvJournal, "Default journal path"},
		{"  " + EnvColor, "auto | always | never"},
		{"  " + EnvVerbose, "1/true enables verbose output"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// flag.Value adapter so ColorMode can be set from FOLDERNORM_COLOR.

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
