// Package menu is the interactive text front end: a numbered main menu for
// configuring options, previewing, and running the rename, read line by
// line from any io.Reader.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/backmassage/foldernorm/internal/config"
	"github.com/backmassage/foldernorm/internal/display"
	"github.com/backmassage/foldernorm/internal/logging"
	"github.com/backmassage/foldernorm/internal/naming"
	"github.com/backmassage/foldernorm/internal/pipeline"
)

const boxWidth = 78

// Menu holds the session state. Options live only in memory and start from
// the config's switches on every launch.
type Menu struct {
	cfg        *config.Config
	log        *logging.Logger
	in         *bufio.Reader
	out        io.Writer
	cache      *naming.Cache
	configured bool
}

// New returns a Menu reading choices from in and writing screens to out.
// Rename progress goes through log.
func New(cfg *config.Config, log *logging.Logger, in io.Reader, out io.Writer) (*Menu, error) {
	cache, err := naming.NewCache(naming.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Menu{
		cfg:   cfg,
		log:   log,
		in:    bufio.NewReader(in),
		out:   out,
		cache: cache,
	}, nil
}

// Run shows the main menu until the user exits or input ends.
func (m *Menu) Run() error {
	for {
		m.printMain()
		choice, ok := m.prompt("Choose an option (1-5): ")
		if !ok {
			return nil
		}
		switch choice {
		case "1":
			if m.optionsMenu() {
				m.configured = true
				fmt.Fprintln(m.out, "✅ Options saved.")
			}
		case "2":
			m.preview()
			m.pause()
		case "3":
			m.rename()
			m.pause()
		case "4":
			m.help()
			m.pause()
		case "5":
			fmt.Fprintln(m.out, "Bye.")
			return nil
		default:
			fmt.Fprintln(m.out, "❌ Invalid option. Choose 1, 2, 3, 4 or 5.")
		}
	}
}

func (m *Menu) printMain() {
	dir, _ := pipeline.TargetDir(m.cfg)
	state := "defaults"
	if m.configured {
		state = "custom"
	}
	box(m.out, "FOLDER NAME NORMALIZER: MAIN MENU",
		"",
		"Working directory:",
		"   "+dir,
		"",
		"1. Configure normalization options",
		"2. Preview changes",
		"3. Run rename",
		"4. Help",
		"5. Exit",
		"",
		"Options: "+state,
	)
}

// optionsMenu edits a copy of the options. It reports true when the user
// accepted them with 8; 9 or end of input discards the edits.
func (m *Menu) optionsMenu() bool {
	opts := m.cfg.NormalizationOptions()
	toggles := []struct {
		label string
		flag  *bool
	}{
		{"Convert to lowercase", &opts.Lowercase},
		{"Remove accents", &opts.RemoveAccents},
		{"Replace spaces with _", &opts.ReplaceSpaces},
		{"Remove special characters", &opts.RemoveSpecial},
		{"Preserve numbers", &opts.PreserveNumbers},
		{"Preserve dots", &opts.PreserveDots},
	}

	for {
		lines := []string{""}
		for i, t := range toggles {
			lines = append(lines, fmt.Sprintf("%d. %-30s %s", i+1, t.label, onOff(*t.flag)))
		}
		lines = append(lines, "", "7. Show examples with these options", "8. Accept these options", "9. Back to main menu")
		box(m.out, "NORMALIZATION OPTIONS", lines...)

		choice, ok := m.prompt("Choose an option (1-9): ")
		if !ok {
			return false
		}
		switch choice {
		case "1", "2", "3", "4", "5", "6":
			t := toggles[choice[0]-'1']
			*t.flag = !*t.flag
		case "7":
			m.examples(opts)
			m.pause()
		case "8":
			m.cfg.SetNormalizationOptions(opts)
			return true
		case "9":
			return false
		default:
			fmt.Fprintln(m.out, "❌ Invalid option. Try again.")
		}
	}
}

func (m *Menu) examples(opts naming.Options) {
	box(m.out, "EXAMPLE TRANSFORMATIONS")
	fmt.Fprintln(m.out)
	WriteExamples(m.out, naming.RenderExamples(opts, m.cache.Normalize))
}

// WriteExamples prints rendered examples as numbered before/after pairs.
func WriteExamples(w io.Writer, examples []naming.Example) {
	for i, ex := range examples {
		fmt.Fprintf(w, "%d. '%s'\n", i+1, ex.Original)
		fmt.Fprintf(w, "   → '%s'\n\n", ex.Normalized)
	}
}

func (m *Menu) scanner() pipeline.Scanner {
	return pipeline.Scanner{Normalize: m.cache.Normalize, DiskOnly: m.cfg.DiskConflictsOnly}
}

func (m *Menu) preview() {
	box(m.out, "PREVIEW")
	dir, err := pipeline.TargetDir(m.cfg)
	if err != nil {
		fmt.Fprintf(m.out, "❌ %v\n", err)
		return
	}
	fmt.Fprintf(m.out, "🔍 Proposed changes in:\n   %s\n%s\n", dir, strings.Repeat("═", boxWidth+2))

	items, err := m.scanner().Scan(dir, m.cfg.NormalizationOptions())
	if err != nil {
		fmt.Fprintf(m.out, "❌ %v\n", err)
		return
	}
	if len(items) == 0 {
		fmt.Fprintln(m.out, "ℹ️  No folders found.")
		return
	}
	for i, it := range items {
		fmt.Fprintln(m.out, it.Line(i+1, len(items)))
	}
	ps := pipeline.Summarize(items)
	fmt.Fprintln(m.out, strings.Repeat("═", boxWidth+2))
	fmt.Fprintln(m.out, display.PreviewSummary(ps.Pending, ps.Conflicts, ps.Total))
}

func (m *Menu) rename() {
	box(m.out, "RUN RENAME")
	run := *m.cfg
	run.Apply = true
	run.AssumeYes = false

	stats, err := pipeline.Run(&run, m.log, m.out, func(q string) bool {
		return Confirm(m.in, m.out, q)
	})
	switch {
	case err != nil:
		fmt.Fprintln(m.out, "❌ The rename could not start.")
	case stats.Errors() > 0:
		fmt.Fprintln(m.out, "❌ The rename finished with errors.")
	case stats.Current > 0:
		fmt.Fprintln(m.out, "✅ Done.")
	}
}

func (m *Menu) help() {
	box(m.out, "HELP",
		"",
		"Renames every folder directly inside the working directory so that",
		"its name is safe on any system. Files and nested folders are untouched.",
		"",
		"Recommended steps:",
		"  1. Configure the options you need",
		"  2. Preview what would change",
		"  3. Run the rename once the preview looks right",
		"",
		"Options:",
		"  Lowercase        folds every letter to lowercase",
		"  Remove accents   ñ→n, á→a, é→e, ...",
		"  Replace spaces   whitespace runs become _",
		"  Remove special   symbols such as @#$%&*() become _",
		"  Preserve numbers keeps 0-9",
		"  Preserve dots    keeps .",
		"",
		"Folders whose new name is already taken are reported as conflicts",
		"and left alone. Back up important data before renaming.",
	)
}

// prompt prints label and reads one trimmed line. ok is false at end of
// input.
func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, "\n"+label)
	return readLine(m.in)
}

func (m *Menu) pause() {
	fmt.Fprint(m.out, "\nPress Enter to continue...")
	readLine(m.in)
	fmt.Fprintln(m.out)
}

// Confirm asks question and reads the answer from r. Empty input, "s",
// "si", "sí", "y" and "yes" (any case) mean yes; end of input means no.
func Confirm(r *bufio.Reader, w io.Writer, question string) bool {
	fmt.Fprintf(w, "%s (Y/n): ", question)
	answer, ok := readLine(r)
	if !ok {
		fmt.Fprintln(w)
		return false
	}
	switch strings.ToLower(answer) {
	case "", "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}

func readLine(r *bufio.Reader) (string, bool) {
	line, err := r.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func onOff(v bool) string {
	if v {
		return "✅ ON"
	}
	return "❌ OFF"
}
