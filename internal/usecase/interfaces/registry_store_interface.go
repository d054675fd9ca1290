package interfaces

import (
	"athwela/internal/domain/entities"
	"context"
)

// IRegistryStore persists per-client "my posts" / "my pledges" markers.
// Record is idempotent per (client, record, role).

type IRegistryStore interface {
	Record(ctx context.Context, entry entities.RegistryEntry) error
	Forget(ctx context.Context, clientID, recordID string, role entities.RegistryRole) error
	Contains(ctx context.Context, clientID, recordID string, role entities.RegistryRole) (bool, error)
	List(ctx context.Context, clientID string, role entities.RegistryRole) ([]entities.RegistryEntry, error)
}
