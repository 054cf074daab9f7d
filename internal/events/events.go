// Package events runs a commit on a background goroutine and reports each
// outcome on a channel, for front ends that must not block while folders
// are renamed.
package events

import (
	"github.com/backmassage/foldernorm/internal/pipeline"
)

// Event is one step of a background commit. Exactly one of Result and
// Summary is set; the Summary event is always last.
type Event struct {
	Index   int // 1-based position of Result; 0 on the Summary event.
	Total   int
	Result  *pipeline.Result
	Summary *pipeline.RunStats
}

// Done reports whether e is the final event.
func (e Event) Done() bool { return e.Summary != nil }

// Stream commits items in order on a new goroutine and sends one Event per
// item followed by a Summary. The channel is closed after the Summary.
// The commit always runs to completion, even if nobody reads the channel.
func Stream(items []pipeline.PreviewItem) <-chan Event {
	total := len(items)
	ch := make(chan Event, total+1)
	go func() {
		defer close(ch)
		stats := pipeline.RunStats{Total: total}
		pipeline.CommitEach(items, func(i int, r pipeline.Result) {
			stats.Add(r)
			ch <- Event{Index: i + 1, Total: total, Result: &r}
		})
		ch <- Event{Total: total, Summary: &stats}
	}()
	return ch
}

// Drain reads ch until it closes, calling fn for every event, and returns
// the final stats. fn may be nil.
func Drain(ch <-chan Event, fn func(Event)) pipeline.RunStats {
	var stats pipeline.RunStats
	for ev := range ch {
		if fn != nil {
			fn(ev)
		}
		if ev.Summary != nil {
			stats = *ev.Summary
		}
	}
	return stats
}
