package pipeline

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// FolderEntry is one immediate subdirectory of a scanned directory.
type FolderEntry struct {
	Name    string // Base name as listed.
	Path    string // Absolute path of the entry (the link itself for symlinks).
	Symlink bool   // Entry is a symlink that resolves to a directory.
}

// ListFolders resolves dir to an absolute path and returns its immediate
// child directories sorted by name. Files are ignored, and so are symlinks
// that are dangling or point at files. Nothing below the first level is read.
func ListFolders(dir string) (string, []FolderEntry, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, errors.Wrapf(ErrInvalidDirectory, "%s: %v", dir, err)
	}

	info, err := os.Stat(abs)
	switch {
	case err != nil && isPermission(err):
		return abs, nil, errors.Wrapf(ErrAccessDenied, "%s", abs)
	case err != nil:
		return abs, nil, errors.Wrapf(ErrInvalidDirectory, "%s does not exist", abs)
	case !info.IsDir():
		return abs, nil, errors.Wrapf(ErrInvalidDirectory, "%s is not a directory", abs)
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		if isPermission(err) {
			return abs, nil, errors.Wrapf(ErrAccessDenied, "cannot list %s", abs)
		}
		return abs, nil, errors.Wrapf(ErrInvalidDirectory, "cannot list %s: %v", abs, err)
	}

	var folders []FolderEntry
	for _, e := range entries {
		path := filepath.Join(abs, e.Name())
		switch {
		case e.IsDir():
			folders = append(folders, FolderEntry{Name: e.Name(), Path: path})
		case e.Type()&os.ModeSymlink != 0:
			if target, err := os.Stat(path); err == nil && target.IsDir() {
				folders = append(folders, FolderEntry{Name: e.Name(), Path: path, Symlink: true})
			}
		}
	}
	// Progress numbering and first-claimant-wins depend on this order.
	sort.Slice(folders, func(i, j int) bool { return folders[i].Name < folders[j].Name })
	return abs, folders, nil
}
