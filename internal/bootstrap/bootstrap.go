package bootstrap

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// examplesDir is the root of the embedded example tree.
const examplesDir = "examples"

//go:embed all:examples
var examples embed.FS

// Examples returns the bundled example skeleton tree.
func Examples() fs.FS {
	sub, err := fs.Sub(examples, examplesDir)
	if err != nil {
		// fs.Sub only fails on an invalid directory name.
		panic(err)
	}
	return sub
}

// ErrDestinationExists is returned by Install when the destination root is
// already present.
var ErrDestinationExists = errors.New("destination already exists")

// Install copies the bundled examples into dst. It fails with
// ErrDestinationExists if anything is already at dst.
func Install(dst string, progress func(string)) error {
	if _, err := os.Lstat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrDestinationExists, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check %s: %w", dst, err)
	}
	return CopyTree(Examples(), dst, progress)
}

// CopyTree mirrors every directory and regular file of src into dstDir.
// Directories are merged; existing files are overwritten. progress, if
// set, receives the destination path of every directory and file visited.
func CopyTree(src fs.FS, dstDir string, progress func(string)) error {
	return fs.WalkDir(src, ".", func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return fmt.Errorf("error walking source directory at %s: %w", p, walkErr)
		}

		dstPath := filepath.Join(dstDir, filepath.FromSlash(p))

		// Symlinks are skipped to keep the copy predictable.
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}

		if d.IsDir() {
			if err := os.MkdirAll(dstPath, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
		} else {
			if err := copyFile(src, p, dstPath); err != nil {
				return err
			}
		}

		if progress != nil {
			progress(dstPath)
		}
		return nil
	})
}

// copyFile copies a single file out of src, preserving its mode where the
// source filesystem reports one.
func copyFile(src fs.FS, name, dst string) error {
	in, err := src.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", name, err)
	}
	defer func() { _ = in.Close() }()

	mode := fs.FileMode(0o644)
	if info, statErr := in.Stat(); statErr == nil && info.Mode().Perm()&0o111 != 0 {
		mode = info.Mode().Perm()
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dst, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", name, dst, err)
	}
	return nil
}
