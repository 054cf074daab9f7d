package pipeline

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/backmassage/foldernorm/internal/check"
	"github.com/backmassage/foldernorm/internal/config"
	"github.com/backmassage/foldernorm/internal/display"
	"github.com/backmassage/foldernorm/internal/journal"
	"github.com/backmassage/foldernorm/internal/logging"
	"github.com/backmassage/foldernorm/internal/naming"
	"github.com/backmassage/foldernorm/internal/report"
)

// Confirm asks the user a yes/no question.
type Confirm func(question string) bool

// Run is the CLI batch entry point: scan cfg.Dir, print the preview, and,
// when cfg.Apply is set and the user confirms, commit and summarize. The
// optional report and journal are written along the way. The returned error
// is non-nil only when the scan itself failed; per-folder failures are in
// the stats.
func Run(cfg *config.Config, log *logging.Logger, out io.Writer, confirm Confirm) (RunStats, error) {
	var stats RunStats

	dir, err := TargetDir(cfg)
	if err != nil {
		log.Error("%v", err)
		return stats, err
	}
	opts := cfg.NormalizationOptions()
	logOptions(log, opts)

	items, err := Scanner{DiskOnly: cfg.DiskConflictsOnly}.Scan(dir, opts)
	if err != nil {
		log.Error("Scan failed: %v", err)
		return stats, err
	}

	ps := Summarize(items)
	stats.Total = ps.Total
	log.Info("Found %d %s in %s", ps.Total, display.Plural(ps.Total, "folder"), dir)
	if ps.Total == 0 {
		writeReport(cfg, log, "Preview", PreviewRows(items))
		return stats, nil
	}
	fmt.Fprintln(out)
	PrintPreviewTable(out, items)
	logPreviewSummary(log, ps)

	if !cfg.Apply {
		writeReport(cfg, log, "Preview", PreviewRows(items))
		if ps.Pending > 0 {
			log.Info("Preview only; rerun with --apply to rename")
		}
		return stats, nil
	}
	if ps.Pending == 0 {
		writeReport(cfg, log, "Preview", PreviewRows(items))
		log.Success("Nothing to rename")
		return stats, nil
	}

	if err := check.CheckTarget(dir, true); err != nil {
		log.Error("%v", err)
		return stats, err
	}
	if !cfg.AssumeYes {
		log.Warn("This renames folders permanently.")
		if confirm == nil || !confirm(fmt.Sprintf("Rename %d %s in %s?", ps.Pending, display.Plural(ps.Pending, "folder"), dir)) {
			log.Warn("Cancelled; nothing was renamed")
			return stats, nil
		}
	}

	log.Info("Renaming %d %s…", ps.Pending, display.Plural(ps.Pending, "folder"))
	results := CommitEach(items, func(i int, r Result) {
		stats.Add(r)
		logOutcome(log, r.Line(i+1, len(items)), r)
	})

	logSummary(log, &stats)
	RecordJournal(cfg, log, dir, opts, results)
	writeReport(cfg, log, "Outcomes", OutcomeRows(results))
	return stats, nil
}

// TargetDir returns cfg.Dir, or the working directory when unset.
func TargetDir(cfg *config.Config) (string, error) {
	if cfg.Dir != "" {
		return cfg.Dir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(err, "cannot determine working directory")
	}
	return wd, nil
}

// PreviewRows converts a scan into report rows.
func PreviewRows(items []PreviewItem) []report.Row {
	rows := make([]report.Row, len(items))
	for i, it := range items {
		rows[i] = report.Row{
			Index:    i + 1,
			Original: it.OriginalName,
			New:      it.NewName,
			Status:   it.State().String(),
		}
		if it.HasConflict {
			rows[i].Detail = "conflict: " + it.Conflict.String()
			if it.ConflictWith != "" {
				rows[i].Detail += " (" + it.ConflictWith + ")"
			}
		}
	}
	return rows
}

// OutcomeRows converts commit results into report rows.
func OutcomeRows(results []Result) []report.Row {
	rows := make([]report.Row, len(results))
	for i, r := range results {
		rows[i] = report.Row{
			Index:    i + 1,
			Original: r.Item.OriginalName,
			New:      r.Item.NewName,
			Status:   r.Outcome.String(),
			Detail:   r.Reason,
		}
	}
	return rows
}

// JournalEntries converts commit results into journal entries.
func JournalEntries(results []Result) []journal.Entry {
	entries := make([]journal.Entry, len(results))
	for i, r := range results {
		entries[i] = journal.Entry{
			Index:    i + 1,
			Original: r.Item.OriginalName,
			New:      r.Item.NewName,
			Outcome:  r.Outcome.String(),
			Reason:   r.Reason,
		}
	}
	return entries
}

// --- Logging helpers ---

func logOptions(log *logging.Logger, o naming.Options) {
	log.DebugV("Options: lowercase=%v accents=%v spaces=%v special=%v numbers=%v dots=%v",
		o.Lowercase, o.RemoveAccents, o.ReplaceSpaces, o.RemoveSpecial, o.PreserveNumbers, o.PreserveDots)
}

func logPreviewSummary(log *logging.Logger, ps PreviewStats) {
	msg := display.PreviewSummary(ps.Pending, ps.Conflicts, ps.Total)
	if ps.Conflicts > 0 {
		log.Conflict("%s", msg)
		return
	}
	log.Info("%s", msg)
}

func logOutcome(log *logging.Logger, line string, r Result) {
	switch r.Outcome {
	case Renamed:
		log.Success("%s", line)
	case Conflict, IntraBatchConflict:
		log.Conflict("%s", line)
	case Failed:
		log.Error("%s", line)
	default:
		log.DebugV("%s", line)
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Summary:")
	for _, l := range display.SummaryLines(stats.Renamed, stats.Skipped, stats.Errors(), stats.Current) {
		log.Info("  %s", l)
	}
	if stats.Errors() > 0 {
		log.Warn("Finished with %d %s", stats.Errors(), display.Plural(stats.Errors(), "error"))
	} else {
		log.Success("Finished")
	}
}

// RecordJournal appends a committed batch to cfg.JournalPath, if set.
// Failures are logged, never returned.
func RecordJournal(cfg *config.Config, log *logging.Logger, dir string, opts naming.Options, results []Result) {
	if cfg.JournalPath == "" {
		return
	}
	db, err := journal.Open(cfg.JournalPath)
	if err != nil {
		log.Error("Journal: %v", err)
		return
	}
	defer db.Close()
	id, err := db.Record(dir, opts, JournalEntries(results))
	if err != nil {
		log.Error("Journal: %v", err)
		return
	}
	log.Info("Journal: batch %s recorded in %s", id, cfg.JournalPath)
}

func writeReport(cfg *config.Config, log *logging.Logger, title string, rows []report.Row) {
	if cfg.ReportPath == "" {
		return
	}
	if err := report.Write(cfg.ReportPath, title, rows); err != nil {
		log.Error("Report: %v", err)
		return
	}
	log.Info("Report written to %s", cfg.ReportPath)
}
