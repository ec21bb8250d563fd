package fsutil

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// DefaultFileMode is the default permission mode for newly created files.
const DefaultFileMode os.FileMode = 0o644

// WriteOptions controls how output files are written.
type WriteOptions struct {
	// Mode is the permission mode of the written file. Zero means DefaultFileMode.
	Mode os.FileMode

	// Atomic writes through a temp file in the target directory followed by a rename.
	Atomic bool
}

// Write stores content at path and reports whether the file changed.
// An existing file with identical content is left untouched.
func Write(ctx context.Context, path string, content []byte, opts WriteOptions) (bool, error) {
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("write file: %w", ctx.Err())
	default:
	}

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(existing, content) {
			return false, nil
		}
	case errors.Is(err, fs.ErrNotExist):
	case errors.Is(err, fs.ErrPermission):
		return false, fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
	default:
		return false, fmt.Errorf("read existing %s: %w", path, err)
	}

	if opts.Atomic {
		err = WriteAtomic(ctx, path, content, opts.Mode)
	} else {
		err = writeDirect(path, content, opts.Mode)
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// WriteAtomic writes content to path atomically using a temp file and rename.
// If mode is 0, DefaultFileMode is used. On error the temp file is removed
// and any existing file at path is left untouched.
func WriteAtomic(ctx context.Context, path string, content []byte, mode os.FileMode) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("write atomic: %w", ctx.Err())
	default:
	}

	if mode == 0 {
		mode = DefaultFileMode
	}

	// Same directory, so the rename never crosses file systems.
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}

	success = true
	return nil
}

// writeDirect truncates and rewrites path in place.
func writeDirect(path string, content []byte, mode os.FileMode) error {
	if mode == 0 {
		mode = DefaultFileMode
	}

	if err := os.WriteFile(path, content, mode); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return fmt.Errorf("%w: %s: %w", ErrPermissionDenied, path, err)
		}
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
