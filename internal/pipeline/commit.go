package pipeline

import (
	"os"

	"github.com/pkg/errors"
)

// Outcome is the terminal state of one item after commit.
type Outcome int

const (
	Skipped            Outcome = iota // No change needed.
	Conflict                          // Target existed at scan time; not attempted.
	IntraBatchConflict                // Target claimed by an earlier item; not attempted.
	Renamed                           // Filesystem rename succeeded.
	Failed                            // Rename attempted (or re-checked) and failed.
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Conflict:
		return "conflict"
	case IntraBatchConflict:
		return "batch conflict"
	case Renamed:
		return "renamed"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result pairs a PreviewItem with its commit outcome. Reason is a short
// human-readable explanation ("permission" for refused renames, otherwise
// the OS message); Err carries the classified error for Conflict,
// IntraBatchConflict and Failed.
type Result struct {
	Item    PreviewItem
	Outcome Outcome
	Reason  string
	Err     error
}

// CommitOne applies a single PreviewItem. It never returns an error; every
// failure is folded into the Result.
//
// Right before renaming it re-checks that the source is still a directory
// and that nothing other than the source occupies the target, so drift since
// the scan (or an unreported in-batch collision) surfaces as Failed instead
// of replacing an existing entry.
func CommitOne(item PreviewItem) Result {
	res := Result{Item: item}

	switch item.State() {
	case StateUnchanged:
		res.Outcome = Skipped
		return res
	case StatePendingConflict:
		res.Outcome = Conflict
		res.Reason = "target exists"
		if item.Conflict == ConflictBatch {
			res.Outcome = IntraBatchConflict
			res.Reason = "target claimed by " + item.ConflictWith
		}
		res.Err = errors.Wrapf(ErrNameConflict, "%s -> %s", item.OriginalName, item.NewName)
		return res
	}

	res.Outcome = Failed
	if info, err := os.Stat(item.Path); err != nil || !info.IsDir() {
		res.Reason = "source is no longer a directory"
		if err != nil {
			res.Reason = err.Error()
		}
		res.Err = errors.Wrapf(ErrRenameFailed, "%s: %s", item.OriginalName, res.Reason)
		return res
	}

	target := item.Target()
	if targetOccupied(item.Path, target) {
		res.Reason = "target already exists: " + target
		res.Err = errors.Wrapf(ErrNameConflict, "%s -> %s appeared after scan", item.OriginalName, item.NewName)
		return res
	}

	if err := os.Rename(item.Path, target); err != nil {
		if isPermission(err) {
			res.Reason = ReasonPermission
			res.Err = errors.Wrapf(ErrAccessDenied, "rename %s: %v", item.OriginalName, err)
			return res
		}
		res.Reason = err.Error()
		res.Err = errors.Wrapf(ErrRenameFailed, "rename %s: %v", item.OriginalName, err)
		return res
	}

	res.Outcome = Renamed
	return res
}

// Commit applies items in order, one at a time, and returns one Result per
// item. Individual failures never stop the batch.
func Commit(items []PreviewItem) []Result {
	return CommitEach(items, nil)
}

// CommitEach is Commit with a callback invoked after each item, in order,
// on the calling goroutine. fn may be nil.
func CommitEach(items []PreviewItem, fn func(i int, r Result)) []Result {
	results := make([]Result, 0, len(items))
	for i, item := range items {
		r := CommitOne(item)
		results = append(results, r)
		if fn != nil {
			fn(i, r)
		}
	}
	return results
}
