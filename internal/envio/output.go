package envio

import (
	"fmt"
	"io"

	"github.com/envq-labs/envq/internal/platform"
	"github.com/moby/sys/atomicwriter"
)

// WriteOptions controls how a file is rewritten.
type WriteOptions struct {
	// Backup copies the previous contents to <file>.bak before the rewrite.
	Backup bool
}

// WriteOutput writes content to path, or to stdout when path is empty.
func WriteOutput(path, content string, stdout io.Writer, opts WriteOptions) error {
	if path == "" {
		if _, err := io.WriteString(stdout, content); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
		return nil
	}
	return WriteFile(path, []byte(content), opts)
}

// WriteFile replaces the file at path with data. The data goes to a
// temporary file in the same directory which is then renamed over the
// original, so a crash leaves either the old or the new contents. Symlinks
// are followed so the link itself survives, and the original permission bits
// are kept.
func WriteFile(path string, data []byte, opts WriteOptions) error {
	target, err := platform.ResolveTarget(path)
	if err != nil {
		return err
	}

	mode, err := platform.FileMode(target)
	if err != nil {
		return fmt.Errorf("stat %s: %w", target, err)
	}

	if opts.Backup {
		if err := backupFile(target, mode); err != nil {
			return err
		}
	}

	if err := atomicwriter.WriteFile(target, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
