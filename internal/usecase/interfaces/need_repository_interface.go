package interfaces

import (
	"athwela/internal/domain/entities"
	"context"
)

// INeedRepository abstracts DynamoDB persistence for Need.
//
// Transact is the store's read-modify-write primitive:
//   - consistent read of the current document
//   - fn computes the replacement (returning an error aborts without writing)
//   - the replacement is written only if the stored version is unchanged, else ErrConflict
//
// A missing need yields the zero Need and fn is not called.

type INeedRepository interface {
	Create(ctx context.Context, n entities.Need) (entities.Need, error)
	GetByID(ctx context.Context, id string) (entities.Need, error)
	List(ctx context.Context) ([]entities.Need, error)
	Transact(ctx context.Context, id string, fn func(current entities.Need) (entities.Need, error)) (entities.Need, error)
}
