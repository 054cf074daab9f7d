package pipeline

import (
	"io/fs"

	"github.com/pkg/errors"
)

// Error taxonomy. Scan-level failures wrap ErrInvalidDirectory or
// ErrAccessDenied and abort the scan; commit-level failures are attached to
// individual Results and never abort the batch.
var (
	ErrInvalidDirectory = errors.New("invalid directory")
	ErrAccessDenied     = errors.New("access denied")
	ErrNameConflict     = errors.New("name conflict")
	ErrRenameFailed     = errors.New("rename failed")
)

// ReasonPermission is the Result.Reason of a rename refused by the OS.
const ReasonPermission = "permission"

func isPermission(err error) bool {
	return errors.Is(err, fs.ErrPermission)
}
