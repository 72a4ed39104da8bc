package envio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/envq-labs/envq/internal/platform"
)

// BackupSuffix is appended to a file name to form its backup path.
const BackupSuffix = ".bak"

// backupFile copies path to path+BackupSuffix with the same permission bits.
// A missing source is not an error: there is nothing to back up.
func backupFile(path string, mode os.FileMode) error {
	backupPath := path + BackupSuffix
	if err := copyFile(path, backupPath, mode); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("creating backup %s: %w", backupPath, err)
	}
	return nil
}

// copyFile copies src to dst. A new dst is created with mode; an existing
// one is narrowed to mode before any data is written.
func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := platform.Chmod(dst, mode); err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
