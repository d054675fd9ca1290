package interfaces

import (
	"athwela/internal/domain/entities"
	"context"
)

// IVolunteerEventRepository abstracts DynamoDB persistence for volunteer events.
//
// Transact has the same contract as INeedRepository.Transact: the replacement is
// written only if the stored version is unchanged, else ErrConflict. A missing event
// yields the zero VolunteerEvent and fn is not called.

type IVolunteerEventRepository interface {
	Create(ctx context.Context, e entities.VolunteerEvent) (entities.VolunteerEvent, error)
	GetByID(ctx context.Context, id string) (entities.VolunteerEvent, error)
	List(ctx context.Context) ([]entities.VolunteerEvent, error)
	Transact(ctx context.Context, id string, fn func(current entities.VolunteerEvent) (entities.VolunteerEvent, error)) (entities.VolunteerEvent, error)
}
