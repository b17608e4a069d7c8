package verify

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// SetupError means the scratch workspace could not be prepared. It is the
// only fatal condition: without a workspace no method can run at all.
type SetupError struct {
	Dir string
	Err error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("preparing scratch directory %s: %v", e.Dir, e.Err)
}

func (e *SetupError) Unwrap() error { return e.Err }

// prepareScratch recreates the scratch directory from empty, so every run
// starts from a clean working area.
func prepareScratch(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return &SetupError{Dir: dir, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &SetupError{Dir: dir, Err: err}
	}
	return nil
}

// copyFile copies src into dstDir under the same base name, preserving the
// source's permission bits.
func copyFile(src, dstDir string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	fi, err := in.Stat()
	if err != nil {
		return err
	}

	dst := filepath.Join(dstDir, filepath.Base(src))
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
