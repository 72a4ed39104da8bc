package platform

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// maxLinkHops bounds symlink chains so a cycle cannot loop forever.
const maxLinkHops = 40

// ResolveTarget follows path through any chain of symlinks and returns the
// path of the regular file that should be rewritten. Unlike
// filepath.EvalSymlinks it accepts a dangling link and returns the missing
// target, so writing through the link creates that file.
func ResolveTarget(path string) (string, error) {
	current := path
	for range maxLinkHops {
		info, err := os.Lstat(current)
		if errors.Is(err, fs.ErrNotExist) {
			return current, nil
		}
		if err != nil {
			return "", err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return current, nil
		}

		target, err := ReadSymlinkTarget(current)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(filepath.Dir(current), target)
		}
		current = target
	}
	return "", fmt.Errorf("resolving %s: too many levels of symbolic links", path)
}

// ReadSymlinkTarget returns the raw target of a symlink.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", fmt.Errorf("reading symlink %s: %w", path, err)
	}
	return target, nil
}

// IsSymlink reports whether path itself is a symlink.
func IsSymlink(path string) bool {
	info, err := os.Lstat(path)
	return err == nil && info.Mode()&os.ModeSymlink != 0
}
