package interfaces

import (
	"athwela/internal/domain/entities"
	"context"
)

// ISecuredRecordStore is the collection-agnostic view the PIN guard works through.
//
//   - Lock returns the record's pin hash and version (zero RecordLock when absent)
//   - ApplyPatch and Delete only succeed if the stored version still equals version,
//     otherwise they return ErrConflict

type ISecuredRecordStore interface {
	Collection() string
	Lock(ctx context.Context, id string) (entities.RecordLock, error)
	ApplyPatch(ctx context.Context, id string, version int64, patch entities.Patch) error
	Delete(ctx context.Context, id string, version int64) error
}
