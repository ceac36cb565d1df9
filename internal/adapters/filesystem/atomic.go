package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
)

// TempFilePrefix marks half-written notes files. A crash can leave one
// behind next to notes.json; it is never read back.
const TempFilePrefix = ".tui-notes-tmp-"

var rename = os.Rename

// writeFileAtomic replaces filename with data. Readers see either the old
// contents or the new ones, never a partial file.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, TempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("cannot stage %s: %w", filepath.Base(filename), err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	stage := func(step string, e error) error {
		return fmt.Errorf("staging %s: %s: %w", filepath.Base(filename), step, e)
	}
	if err := tmp.Chmod(perm); err != nil {
		return stage("chmod", err)
	}
	if _, err := tmp.Write(data); err != nil {
		return stage("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return stage("fsync", err)
	}
	if err := tmp.Close(); err != nil {
		return stage("close", err)
	}

	if err := rename(tmpName, filename); err != nil {
		return fmt.Errorf("cannot replace %s: %w", filename, err)
	}
	return nil
}
