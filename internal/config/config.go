// Package config holds runtime configuration: defaults, environment overrides,
// CLI flag parsing, and validation. Normalization switches are rebuilt into a
// fresh naming.Options value on every scan; nothing here is persisted.
package config

import (
	"errors"
	"strings"

	"github.com/backmassage/foldernorm/internal/naming"
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig],
// then [ApplyEnv], then [ParseFlags] before being passed (by pointer) to
// packages that need it.
type Config struct {
	// Target directory (positional arg, FOLDERNORM_DIR, or the working directory).
	Dir string

	// Normalization switches. Defaults: all on except PreserveDots.
	Lowercase       bool
	RemoveAccents   bool
	ReplaceSpaces   bool
	RemoveSpecial   bool
	PreserveNumbers bool
	PreserveDots    bool

	// Behavior.
	Apply             bool // Commit renames after the preview (default: preview only).
	AssumeYes         bool // Skip the confirmation prompt; requires Apply.
	Menu              bool // Start the interactive text menu.
	ShowExamples      bool // Print the built-in example transformations and exit.
	DiskConflictsOnly bool // Check targets only against disk, not against the batch.

	// Outputs.
	ReportPath  string // Optional .xlsx or .csv report of the preview/outcomes.
	JournalPath string // Optional SQLite journal of committed batches.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with every default applied. Used as the base
// before [ApplyEnv] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	opts := naming.DefaultOptions()
	return Config{
		Lowercase:       opts.Lowercase,
		RemoveAccents:   opts.RemoveAccents,
		ReplaceSpaces:   opts.ReplaceSpaces,
		RemoveSpecial:   opts.RemoveSpecial,
		PreserveNumbers: opts.PreserveNumbers,
		PreserveDots:    opts.PreserveDots,
		ColorMode:       ColorAuto,
	}
}

// NormalizationOptions returns the switches as an immutable naming.Options
// value, built fresh on each call.
func (c *Config) NormalizationOptions() naming.Options {
	return naming.Options{
		Lowercase:       c.Lowercase,
		RemoveAccents:   c.RemoveAccents,
		ReplaceSpaces:   c.ReplaceSpaces,
		RemoveSpecial:   c.RemoveSpecial,
		PreserveNumbers: c.PreserveNumbers,
		PreserveDots:    c.PreserveDots,
	}
}

// SetNormalizationOptions copies opts into the switch fields.
func (c *Config) SetNormalizationOptions(opts naming.Options) {
	c.Lowercase = opts.Lowercase
	c.RemoveAccents = opts.RemoveAccents
	c.ReplaceSpaces = opts.ReplaceSpaces
	c.RemoveSpecial = opts.RemoveSpecial
	c.PreserveNumbers = opts.PreserveNumbers
	c.PreserveDots = opts.PreserveDots
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks the color mode, flag combinations, and output paths.
// An empty Dir is allowed; callers fall back to the working directory.
func (c *Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid color mode (use 'auto', 'always' or 'never')")
	}

	if c.AssumeYes && !c.Apply {
		return errors.New("--yes requires --apply")
	}
	if c.Menu && (c.Apply || c.CheckOnly || c.ShowExamples) {
		return errors.New("--menu cannot be combined with --apply, --check or --examples")
	}
	if c.ReportPath != "" {
		if err := validateReportPath(c.ReportPath); err != nil {
			return err
		}
	}
	return nil
}

func validateReportPath(path string) error {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".xlsx") || strings.HasSuffix(lower, ".csv") {
		return nil
	}
	return errors.New("report path must end in .xlsx or .csv")
}
