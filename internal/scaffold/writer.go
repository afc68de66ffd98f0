package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrTargetExists is returned by Apply when the target directory is
// already present (or, with force, present but not an empty directory).
// Callers use it to distinguish a blocked target from a write failure.
var ErrTargetExists = errors.New("target path already exists")

// ProgressFunc is invoked after each file in the plan is written.
// done counts written files, total is the plan's file count, and path is
// the project-relative path just written. Used for verbose progress output.
type ProgressFunc func(done, total int, path string)

// Apply materializes a plan on disk.
//
// The target directory must not exist unless force is true, in which
// case it must exist and be empty. If any write fails, the target
// directory is removed (best effort) so a failed run does not leave a
// half-built project behind.
func Apply(plan *Plan, force bool, progress ProgressFunc) error {
	if err := checkTarget(plan.Root, force); err != nil {
		return err
	}

	if err := os.MkdirAll(plan.Root, 0o755); err != nil {
		return fmt.Errorf("scaffold: create project directory: %w", err)
	}

	// Any failure past this point rolls back the whole target directory.
	success := false
	defer func() {
		if !success {
			_ = os.RemoveAll(plan.Root)
		}
	}()

	for _, dir := range plan.Dirs {
		if err := os.MkdirAll(filepath.Join(plan.Root, dir), 0o755); err != nil {
			return fmt.Errorf("scaffold: create directory %s: %w", dir, err)
		}
	}

	total := plan.FileCount()
	for i, f := range plan.Files {
		dst := filepath.Join(plan.Root, f.Path)
		if err := writeFileAtomic(dst, f.Content, f.Mode); err != nil {
			return fmt.Errorf("scaffold: write %s: %w", f.Path, err)
		}
		if progress != nil {
			progress(i+1, total, f.Path)
		}
	}

	success = true
	return nil
}

// checkTarget enforces the pre-existing directory rule: the target must
// not exist, or with force, must be an empty directory.
func checkTarget(root string, force bool) error {
	info, err := os.Stat(root)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("scaffold: stat target: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrTargetExists, root)
	}
	if !force {
		return fmt.Errorf("%w: %s", ErrTargetExists, root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return fmt.Errorf("scaffold: read target: %w", err)
	}
	if len(entries) > 0 {
		return fmt.Errorf("%w: %s is not empty", ErrTargetExists, root)
	}
	return nil
}

// writeFileAtomic writes data to path via a temp file and rename in the
// same directory, so a crash mid-write never leaves a truncated file.
// The caller must ensure the parent directory exists.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".stackforge-tmp-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}

	success = true
	return nil
}

// WriteFiles writes a list of files under root without the target
// checks or rollback that Apply performs. Used by the docs command,
// which adds files to an existing directory. Existing files are only
// overwritten when force is true; the first conflict aborts the write.
func WriteFiles(root string, files []File, force bool, progress ProgressFunc) error {
	if !force {
		for _, f := range files {
			if _, err := os.Stat(filepath.Join(root, f.Path)); err == nil {
				return fmt.Errorf("%s already exists (use --force to overwrite)", f.Path)
			}
		}
	}

	total := len(files)
	for i, f := range files {
		dst := filepath.Join(root, f.Path)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return fmt.Errorf("scaffold: create directory for %s: %w", f.Path, err)
		}
		mode := f.Mode
		if mode == 0 {
			mode = 0o644
		}
		if err := writeFileAtomic(dst, f.Content, mode); err != nil {
			return fmt.Errorf("scaffold: write %s: %w", f.Path, err)
		}
		if progress != nil {
			progress(i+1, total, f.Path)
		}
	}
	return nil
}
