// Package check provides diagnostics (--check mode) and the pre-commit
// validation of the target directory (CheckTarget).
package check

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/backmassage/foldernorm/internal/config"
	"github.com/backmassage/foldernorm/internal/journal"
	"github.com/backmassage/foldernorm/internal/naming"
)

// Sentinel errors returned by CheckTarget.
var (
	ErrTargetMissing     = errors.New("target directory does not exist")
	ErrTargetNotDir      = errors.New("target is not a directory")
	ErrTargetNotReadable = errors.New("target directory cannot be listed")
	ErrTargetNotWritable = errors.New("target directory is not writable")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck runs the --check flow for cfg.Dir: existence, listing and write
// permission, filesystem case sensitivity, accent stripping, and journal
// writability. It reports true when nothing failed.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")
	log.Info("Platform: %s/%s", runtime.GOOS, runtime.GOARCH)

	ok := true
	dir := targetDir(cfg)
	if err := CheckTarget(dir, true); err != nil {
		log.Error("Target %s: %v", dir, err)
		ok = false
	} else {
		log.Success("Target %s is a writable directory", dir)
		checkCaseSensitivity(dir, log)
	}

	if !checkAccents(log) {
		ok = false
	}
	if cfg.JournalPath != "" && !checkJournal(cfg.JournalPath, log) {
		ok = false
	}
	return ok
}

// CheckTarget validates dir before a scan (forCommit=false) or a commit
// (forCommit=true, which also requires write permission).
func CheckTarget(dir string, forCommit bool) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(ErrTargetMissing, "%s", dir)
		}
		return errors.Wrapf(ErrTargetNotReadable, "%s: %v", dir, err)
	}
	if !info.IsDir() {
		return errors.Wrapf(ErrTargetNotDir, "%s", dir)
	}

	f, err := os.Open(dir)
	if err != nil {
		return errors.Wrapf(ErrTargetNotReadable, "%s: %v", dir, err)
	}
	_, err = f.Readdirnames(1)
	f.Close()
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(ErrTargetNotReadable, "%s: %v", dir, err)
	}

	if !forCommit {
		return nil
	}
	probe, err := os.MkdirTemp(dir, ".foldernorm-check-")
	if err != nil {
		return errors.Wrapf(ErrTargetNotWritable, "%s: %v", dir, err)
	}
	_ = os.Remove(probe)
	return nil
}

// CaseInsensitive reports whether the filesystem holding dir treats names
// that differ only in case as the same entry. It creates and removes a
// probe directory inside dir.
func CaseInsensitive(dir string) (bool, error) {
	name := ".foldernorm-Case-" + uuid.NewString()
	probe := filepath.Join(dir, name)
	if err := os.Mkdir(probe, 0o755); err != nil {
		return false, err
	}
	defer os.Remove(probe)

	_, err := os.Lstat(filepath.Join(dir, strings.ToUpper(name)))
	return err == nil, nil
}

func checkCaseSensitivity(dir string, log Logger) {
	insensitive, err := CaseInsensitive(dir)
	if err != nil {
		log.Warn("Could not probe case sensitivity: %v", err)
		return
	}
	if insensitive {
		log.Info("Filesystem: case-insensitive (case-only renames are allowed)")
	} else {
		log.Info("Filesystem: case-sensitive")
	}
	if insensitive != naming.CaseInsensitivePlatform() {
		log.Warn("Filesystem case handling differs from the %s default; in-batch conflict checks assume the default", runtime.GOOS)
	}
}

func checkAccents(log Logger) bool {
	const in, want = "ñáéíóú", "naeiou"
	got := naming.Normalize(in, naming.DefaultOptions())
	if got != want {
		log.Error("Accent stripping: %q -> %q, want %q", in, got, want)
		return false
	}
	log.Success("Accent stripping: %q -> %q", in, got)
	return true
}

func checkJournal(path string, log Logger) bool {
	db, err := journal.Open(path)
	if err != nil {
		log.Error("Journal %s: %v", path, err)
		return false
	}
	batches, err := db.Batches()
	db.Close()
	if err != nil {
		log.Error("Journal %s: %v", path, err)
		return false
	}
	log.Success("Journal %s is writable (%d batches recorded)", path, len(batches))
	return true
}

func targetDir(cfg *config.Config) string {
	if cfg.Dir != "" {
		return cfg.Dir
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
