package pipeline

import (
	"os"
	"path/filepath"

	"github.com/backmassage/foldernorm/internal/naming"
)

// ConflictKind says why a PreviewItem cannot be renamed.
type ConflictKind int

const (
	ConflictNone     ConflictKind = iota
	ConflictExisting              // Target already exists on disk at scan time.
	ConflictBatch                 // Target claimed by an earlier item of the same batch.
)

func (k ConflictKind) String() string {
	switch k {
	case ConflictExisting:
		return "exists"
	case ConflictBatch:
		return "batch"
	default:
		return "none"
	}
}

// ItemState is the classification of a PreviewItem before commit.
type ItemState int

const (
	StateUnchanged ItemState = iota
	StatePendingRename
	StatePendingConflict
)

func (s ItemState) String() string {
	switch s {
	case StatePendingRename:
		return "pending rename"
	case StatePendingConflict:
		return "pending conflict"
	default:
		return "unchanged"
	}
}

// PreviewItem is the proposed rename for one FolderEntry.
type PreviewItem struct {
	OriginalName string
	NewName      string
	Path         string // Absolute source path.
	WillChange   bool
	HasConflict  bool
	Conflict     ConflictKind
	ConflictWith string // Original name of the earlier claimant for ConflictBatch.
}

// State classifies the item.
func (p PreviewItem) State() ItemState {
	switch {
	case !p.WillChange:
		return StateUnchanged
	case p.HasConflict:
		return StatePendingConflict
	default:
		return StatePendingRename
	}
}

// Target returns the absolute path the item would be renamed to.
func (p PreviewItem) Target() string {
	return filepath.Join(filepath.Dir(p.Path), p.NewName)
}

// Scanner computes previews. The zero value uses naming.Normalize and
// detects in-batch collisions.
type Scanner struct {
	// Normalize overrides naming.Normalize (e.g. with a naming.Cache method).
	Normalize func(string, naming.Options) string

	// DiskOnly disables the in-batch collision check: items are compared
	// only with what exists on disk, and two items sharing a target both
	// pass preview. The second rename then fails at commit time.
	DiskOnly bool
}

// Scan lists dir and classifies every immediate subdirectory under opts.
// The listing is a single snapshot; nothing is renamed.
func (s Scanner) Scan(dir string, opts naming.Options) ([]PreviewItem, error) {
	_, folders, err := ListFolders(dir)
	if err != nil {
		return nil, err
	}

	normalize := s.Normalize
	if normalize == nil {
		normalize = naming.Normalize
	}
	claims := naming.NewClaims()

	items := make([]PreviewItem, 0, len(folders))
	for _, f := range folders {
		item := PreviewItem{
			OriginalName: f.Name,
			NewName:      normalize(f.Name, opts),
			Path:         f.Path,
		}
		item.WillChange = item.NewName != item.OriginalName
		if item.WillChange {
			s.classify(&item, claims)
		}
		items = append(items, item)
	}
	return items, nil
}

func (s Scanner) classify(item *PreviewItem, claims *naming.Claims) {
	if targetOccupied(item.Path, item.Target()) {
		item.HasConflict = true
		item.Conflict = ConflictExisting
		return
	}
	if s.DiskOnly {
		return
	}
	if owner, ok := claims.Claim(item.OriginalName, item.NewName); !ok {
		item.HasConflict = true
		item.Conflict = ConflictBatch
		item.ConflictWith = owner
	}
}

// targetOccupied reports whether an entry other than source sits at target.
// On case-insensitive filesystems a case-only rename finds the source itself
// at target, which is not a collision.
func targetOccupied(source, target string) bool {
	ti, err := os.Lstat(target)
	if err != nil {
		return false
	}
	si, err := os.Lstat(source)
	if err != nil {
		return true
	}
	return !os.SameFile(si, ti)
}

// Scan is Scanner{}.Scan.
func Scan(dir string, opts naming.Options) ([]PreviewItem, error) {
	return Scanner{}.Scan(dir, opts)
}
