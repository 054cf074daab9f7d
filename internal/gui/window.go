// Package gui is the graphical front end: a fyne window with a folder
// chooser, the option checkboxes, a live preview, and a log pane. Renames
// run on a worker goroutine and every outcome is posted back to the UI
// goroutine with fyne.Do.
package gui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/backmassage/foldernorm/internal/config"
	"github.com/backmassage/foldernorm/internal/display"
	"github.com/backmassage/foldernorm/internal/events"
	"github.com/backmassage/foldernorm/internal/logging"
	"github.com/backmassage/foldernorm/internal/pipeline"
)

const appID = "com.backmassage.foldernorm"

// Run opens the main window and blocks until it is closed.
func Run(cfg *config.Config, log *logging.Logger, version string) error {
	sess, err := NewSession(cfg)
	if err != nil {
		return err
	}

	a := app.NewWithID(appID)
	w := a.NewWindow("Folder Name Normalizer " + version)
	w.Resize(fyne.NewSize(1000, 680))

	ui := &window{cfg: cfg, log: log, sess: sess, win: w}
	w.SetContent(ui.build())
	ui.refresh()

	w.ShowAndRun()
	return nil
}

type window struct {
	cfg  *config.Config
	log  *logging.Logger
	sess *Session
	win  fyne.Window

	folderLabel  *widget.Label
	summaryLabel *widget.Label
	preview      *widget.List
	previewLines []string
	logList      *widget.List
	logLines     []string
	checks       []*widget.Check
	buttons      []*widget.Button
	renameBtn    *widget.Button
	busy         bool
	results      []pipeline.Result
}

func (u *window) build() fyne.CanvasObject {
	u.folderLabel = widget.NewLabel("Folder: (none)")
	u.folderLabel.Truncation = fyne.TextTruncateEllipsis

	selectBtn := widget.NewButtonWithIcon("Select Folder…", theme.FolderOpenIcon(), u.chooseFolder)
	refreshBtn := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), u.refresh)
	examplesBtn := widget.NewButtonWithIcon("Examples", theme.InfoIcon(), u.showExamples)
	u.renameBtn = widget.NewButtonWithIcon("Rename", theme.ConfirmIcon(), u.confirmRename)
	u.renameBtn.Importance = widget.HighImportance
	u.buttons = []*widget.Button{selectBtn, refreshBtn, u.renameBtn}

	topBar := container.NewBorder(nil, nil,
		container.NewHBox(selectBtn, refreshBtn),
		container.NewHBox(examplesBtn),
		u.folderLabel,
	)

	options := container.NewVBox(
		widget.NewLabelWithStyle("Normalization options", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	)
	for _, sw := range u.sess.Switches() {
		value := sw.Value
		check := widget.NewCheck(sw.Label, nil)
		check.SetChecked(*value)
		check.OnChanged = func(on bool) {
			*value = on
			u.refresh()
		}
		u.checks = append(u.checks, check)
		options.Add(check)
	}
	options.Add(widget.NewSeparator())
	options.Add(u.renameBtn)

	u.summaryLabel = widget.NewLabel("Select a folder to preview.")
	u.summaryLabel.Wrapping = fyne.TextWrapWord
	u.preview = lineList(&u.previewLines)
	u.logList = lineList(&u.logLines)

	previewPane := container.NewBorder(u.summaryLabel, nil, nil, nil, u.preview)
	logPane := container.NewBorder(
		widget.NewLabelWithStyle("Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil, u.logList,
	)
	right := container.NewVSplit(previewPane, logPane)
	right.Offset = 0.65

	split := container.NewHSplit(container.NewVScroll(options), right)
	split.Offset = 0.28

	return container.NewBorder(topBar, nil, nil, nil, split)
}

// lineList is a read-only list view over *lines.
func lineList(lines *[]string) *widget.List {
	return widget.NewList(
		func() int { return len(*lines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText((*lines)[id])
		},
	)
}

func (u *window) chooseFolder() {
	dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		u.sess.dir = uri.Path()
		u.appendLog("Selected " + uri.Path())
		u.refresh()
	}, u.win).Show()
}

// refresh rescans and redraws the preview. It is a no-op while a rename is
// running.
func (u *window) refresh() {
	if u.busy {
		return
	}
	if dir := u.sess.Dir(); dir != "" {
		u.folderLabel.SetText("Folder: " + dir)
	}
	if err := u.sess.Refresh(); err != nil {
		u.previewLines = nil
		u.summaryLabel.SetText("❌ " + err.Error())
		u.log.Error("%v", err)
		u.renameBtn.Disable()
		u.preview.Refresh()
		return
	}

	u.previewLines = u.sess.Lines()
	u.preview.Refresh()

	ps := u.sess.Stats()
	if u.sess.Dir() == "" {
		u.summaryLabel.SetText("Select a folder to preview.")
	} else {
		u.summaryLabel.SetText(display.PreviewSummary(ps.Pending, ps.Conflicts, ps.Total))
	}
	if ps.Pending > 0 {
		u.renameBtn.Enable()
	} else {
		u.renameBtn.Disable()
	}
}

func (u *window) showExamples() {
	var b strings.Builder
	for i, ex := range u.sess.Examples() {
		fmt.Fprintf(&b, "%d. '%s'\n    → '%s'\n", i+1, ex.Original, ex.Normalized)
	}
	dialog.ShowInformation("Example transformations", b.String(), u.win)
}

func (u *window) confirmRename() {
	ps := u.sess.Stats()
	if ps.Pending == 0 {
		dialog.ShowInformation("Nothing to do", "No folder needs renaming.", u.win)
		return
	}
	msg := fmt.Sprintf("Rename %d %s in\n%s?\n\nThis cannot be undone.",
		ps.Pending, display.Plural(ps.Pending, "folder"), u.sess.Dir())
	if ps.Conflicts > 0 {
		msg += fmt.Sprintf("\n%d %s will be skipped.", ps.Conflicts, display.Plural(ps.Conflicts, "conflict"))
	}
	dialog.ShowConfirm("Confirm rename", msg, func(ok bool) {
		if ok {
			u.startRename()
		}
	}, u.win)
}

// startRename disables the controls and drains the commit stream on a
// worker goroutine. Each event is applied on the UI goroutine.
func (u *window) startRename() {
	u.setBusy(true)
	u.results = nil
	u.appendLog(fmt.Sprintf("Renaming in %s…", u.sess.Dir()))

	ch := u.sess.Commit()
	go events.Drain(ch, func(ev events.Event) {
		fyne.Do(func() { u.handle(ev) })
	})
}

func (u *window) handle(ev events.Event) {
	if r := ev.Result; r != nil {
		u.results = append(u.results, *r)
		line := r.Line(ev.Index, ev.Total)
		u.appendLog(line)
		switch r.Outcome {
		case pipeline.Renamed:
			u.log.Success("%s", line)
		case pipeline.Conflict, pipeline.IntraBatchConflict:
			u.log.Conflict("%s", line)
		case pipeline.Failed:
			u.log.Error("%s", line)
		}
		return
	}

	stats := ev.Summary
	summary := display.SummaryLines(stats.Renamed, stats.Skipped, stats.Errors(), stats.Current)
	for _, l := range summary {
		u.appendLog(l)
	}
	pipeline.RecordJournal(u.cfg, u.log, u.sess.Dir(), u.sess.Options(), u.results)
	u.setBusy(false)
	if stats.Renamed > 0 {
		dialog.ShowInformation("Rename complete", strings.Join(summary, "\n"), u.win)
	}
	u.refresh()
}

func (u *window) setBusy(busy bool) {
	u.busy = busy
	for _, b := range u.buttons {
		if busy {
			b.Disable()
		} else {
			b.Enable()
		}
	}
	for _, c := range u.checks {
		if busy {
			c.Disable()
		} else {
			c.Enable()
		}
	}
}

func (u *window) appendLog(line string) {
	u.logLines = append(u.logLines, line)
	u.logList.Refresh()
	u.logList.ScrollToBottom()
}
