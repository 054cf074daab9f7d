// Package pipeline is the batch rename orchestrator: it lists the immediate
// subdirectories of a target, classifies each proposed name, and commits the
// renames one at a time.
//
// Types:
//   - FolderEntry: one listed subdirectory (symlinks to directories included).
//   - PreviewItem: original/new name, WillChange, HasConflict and the
//     ConflictKind (on disk, or claimed earlier in the same batch).
//   - Outcome / Result: Skipped, Conflict, IntraBatchConflict, Renamed,
//     Failed, with a reason and a classified error.
//   - RunStats / PreviewStats: counters folded from results or items.
//
// Functions:
//   - ListFolders(dir): absolute path + sorted immediate child directories.
//   - Scan / Scanner.Scan(dir, opts): one snapshot, no renames.
//   - CommitOne / Commit / CommitEach(items): sequential, fail-open.
//   - Run(cfg, log, out, confirm): the CLI flow around the above, including
//     the preview table, summary, report and journal.
//
// Scan and Commit never log and hold no state between calls.
package pipeline
