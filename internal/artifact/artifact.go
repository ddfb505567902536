// Package artifact persists the three outputs of one strip run: a
// verbatim backup of the original bundle, the rewritten text over the
// target path, and a human-readable removal log. Sibling paths are
// derived from the target by suffix substitution.
package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultBackupSuffix sits between the stem and the extension:
	// dist/app.js → dist/app.orig.js.
	DefaultBackupSuffix = ".orig"
	// DefaultLogSuffix replaces the extension:
	// dist/app.js → dist/app.enums.log.
	DefaultLogSuffix = ".enums.log"
)

// Paths — три выходных пути одного прогона.
type Paths struct {
	Target string
	Backup string
	Log    string
}

// DerivePaths builds the sibling paths next to the target.
func DerivePaths(target, backupSuffix, logSuffix string) Paths {
	ext := filepath.Ext(target)
	stem := strings.TrimSuffix(target, ext)
	return Paths{
		Target: target,
		Backup: stem + backupSuffix + ext,
		Log:    stem + logSuffix,
	}
}

// Entry is the outcome of one artifact write.
type Entry struct {
	Path    string
	Written int
	Err     error
}

// Report carries all three outcomes; each write is reported
// individually, never silently absorbed.
type Report struct {
	Backup Entry
	Target Entry
	Log    Entry
}

// Err joins the individual failures; nil когда все три записи легли.
func (r Report) Err() error {
	return errors.Join(r.Backup.Err, r.Target.Err, r.Log.Err)
}

// FormatLog joins captured definition texts in discovery order. An
// empty list produces an empty log body.
func FormatLog(removed []string) []byte {
	if len(removed) == 0 {
		return nil
	}
	return []byte(strings.Join(removed, "\n") + "\n")
}

// Write persists the backup and the log concurrently, then overwrites
// the target. The target is written only after both siblings landed:
// until the original is safely on disk the bundle stays untouched.
func Write(paths Paths, original, final []byte, removed []string) Report {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(paths.Target); err == nil {
		mode = info.Mode()
	}

	var rep Report
	var g errgroup.Group
	g.Go(func() error {
		rep.Backup = writeOne(paths.Backup, original, mode)
		return rep.Backup.Err
	})
	g.Go(func() error {
		rep.Log = writeOne(paths.Log, FormatLog(removed), mode)
		return rep.Log.Err
	})
	if err := g.Wait(); err != nil {
		rep.Target = Entry{
			Path: paths.Target,
			Err:  fmt.Errorf("skip %s: backup or log failed", paths.Target),
		}
		return rep
	}

	rep.Target = writeOne(paths.Target, final, mode)
	return rep
}

func writeOne(path string, data []byte, mode os.FileMode) Entry {
	e := Entry{Path: path, Written: len(data)}
	if err := os.WriteFile(path, data, mode); err != nil {
		e.Err = fmt.Errorf("write %s: %w", path, err)
		e.Written = 0
	}
	return e
}
