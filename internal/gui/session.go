package gui

import (
	"github.com/backmassage/foldernorm/internal/config"
	"github.com/backmassage/foldernorm/internal/events"
	"github.com/backmassage/foldernorm/internal/naming"
	"github.com/backmassage/foldernorm/internal/pipeline"
)

// Switch is one option checkbox bound to a field of the session options.
type Switch struct {
	Label string
	Value *bool
}

// Session is the window state that does not depend on fyne: the selected
// directory, the current options, and the last preview. It is only touched
// from the UI goroutine.
type Session struct {
	dir      string
	opts     naming.Options
	diskOnly bool
	cache    *naming.Cache
	items    []pipeline.PreviewItem
	err      error
}

// NewSession starts from the configured directory and switches.
func NewSession(cfg *config.Config) (*Session, error) {
	cache, err := naming.NewCache(naming.DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Session{
		dir:      cfg.Dir,
		opts:     cfg.NormalizationOptions(),
		diskOnly: cfg.DiskConflictsOnly,
		cache:    cache,
	}, nil
}

// Switches returns the six option toggles in menu order.
func (s *Session) Switches() []Switch {
	return []Switch{
		{"Convert to lowercase", &s.opts.Lowercase},
		{"Remove accents", &s.opts.RemoveAccents},
		{"Replace spaces with _", &s.opts.ReplaceSpaces},
		{"Remove special characters", &s.opts.RemoveSpecial},
		{"Preserve numbers", &s.opts.PreserveNumbers},
		{"Preserve dots", &s.opts.PreserveDots},
	}
}

func (s *Session) Dir() string                   { return s.dir }
func (s *Session) Options() naming.Options       { return s.opts }
func (s *Session) Err() error                    { return s.err }
func (s *Session) Items() []pipeline.PreviewItem { return s.items }

// SetDir selects a directory and refreshes the preview.
func (s *Session) SetDir(dir string) error {
	s.dir = dir
	return s.Refresh()
}

// Refresh rescans the directory with the current options. With no
// directory selected the preview is empty.
func (s *Session) Refresh() error {
	s.items, s.err = nil, nil
	if s.dir == "" {
		return nil
	}
	scanner := pipeline.Scanner{Normalize: s.cache.Normalize, DiskOnly: s.diskOnly}
	s.items, s.err = scanner.Scan(s.dir, s.opts)
	return s.err
}

// Stats summarizes the current preview.
func (s *Session) Stats() pipeline.PreviewStats {
	return pipeline.Summarize(s.items)
}

// Lines formats the preview one numbered line per folder.
func (s *Session) Lines() []string {
	lines := make([]string, len(s.items))
	for i, it := range s.items {
		lines[i] = it.Line(i+1, len(s.items))
	}
	return lines
}

// Examples renders the built-in sample names with the current options.
func (s *Session) Examples() []naming.Example {
	return naming.RenderExamples(s.opts, s.cache.Normalize)
}

// Commit starts renaming the current preview on a background goroutine.
// The caller must not refresh until the stream is drained.
func (s *Session) Commit() <-chan events.Event {
	return events.Stream(s.items)
}
