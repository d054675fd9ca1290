package interfaces

import "context"

// IAttemptLimiter damps PIN guessing per record key.
//
// Acquire reserves a verification attempt atomically and returns false once the
// window's budget is spent. Reset clears the budget after a successful check.

type IAttemptLimiter interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Reset(ctx context.Context, key string) error
}
