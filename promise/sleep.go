package promise

import (
	"context"
	"time"
)

// Sleep waits for d and then calls callback, if non-nil, returning its
// error. It returns ctx.Err() without calling callback when ctx is done
// first.
func Sleep(ctx context.Context, d time.Duration, callback func() error) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}
	if callback == nil {
		return nil
	}
	return callback()
}
