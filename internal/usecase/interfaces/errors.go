package interfaces

import "errors"

// ErrConflict is returned by store writes that lost an optimistic-concurrency race:
// the record changed between the read and the conditional write.
var ErrConflict = errors.New("concurrent modification")
