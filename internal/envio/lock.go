package envio

import (
	"context"
	"fmt"
	"time"

	"github.com/envq-labs/envq/internal/platform"
	"github.com/gofrs/flock"
)

// LockSuffix is appended to a file name to form its lock file path.
const LockSuffix = ".lock"

const lockRetryDelay = 50 * time.Millisecond

// Lock takes an exclusive advisory lock for the file at path, waiting until
// it is free or ctx is done. The lock lives in a sidecar <file>.lock next to
// the resolved file and is left in place after Unlock.
func Lock(ctx context.Context, path string) (unlock func() error, err error) {
	target, err := platform.ResolveTarget(path)
	if err != nil {
		return nil, err
	}

	fl := flock.New(target + LockSuffix)
	locked, err := fl.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("locking %s: lock is held by another process", path)
	}
	return fl.Unlock, nil
}
