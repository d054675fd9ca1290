package registry

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"athwela/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "registry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func entry(client, record string, role entities.RegistryRole, at time.Time) entities.RegistryEntry {
	return entities.RegistryEntry{ClientID: client, RecordID: record, Role: role, RecordedAt: at}
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.db")
	for i := 0; i < 3; i++ {
		s, err := Open(path)
		require.NoError(t, err, "open iteration %d", i)
		require.NoError(t, s.Close())
	}
}

func TestStore_RecordIsIdempotent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	first := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, entry("c1", "n1", entities.RegistryRolePledger, first)))
	require.NoError(t, s.Record(ctx, entry("c1", "n1", entities.RegistryRolePledger, first.Add(time.Hour))))

	got, err := s.List(ctx, "c1", entities.RegistryRolePledger)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].RecordedAt.Equal(first))
}

func TestStore_RolesAndClientsAreSeparate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, entry("c1", "n1", entities.RegistryRoleOwner, at)))
	require.NoError(t, s.Record(ctx, entry("c1", "n2", entities.RegistryRolePledger, at)))
	require.NoError(t, s.Record(ctx, entry("c2", "n1", entities.RegistryRolePledger, at)))

	ok, err := s.Contains(ctx, "c1", "n1", entities.RegistryRoleOwner)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.Contains(ctx, "c1", "n1", entities.RegistryRolePledger)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.Contains(ctx, "c2", "n1", entities.RegistryRoleOwner)
	require.NoError(t, err)
	assert.False(t, ok)

	clients, err := s.Clients(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, clients)
}

func TestStore_ListOrdersOldestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, s.Record(ctx, entry("c1", "late", entities.RegistryRoleOwner, base.Add(2*time.Second))))
	require.NoError(t, s.Record(ctx, entry("c1", "early", entities.RegistryRoleOwner, base.Add(500*time.Millisecond))))

	got, err := s.List(ctx, "c1", entities.RegistryRoleOwner)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "early", got[0].RecordID)
	assert.Equal(t, "late", got[1].RecordID)
	assert.Equal(t, entities.RegistryRoleOwner, got[0].Role)
}

func TestStore_ForgetRemovesOnlyThatRole(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Now().UTC()

	require.NoError(t, s.Record(ctx, entry("c1", "n1", entities.RegistryRoleOwner, at)))
	require.NoError(t, s.Record(ctx, entry("c1", "n1", entities.RegistryRolePledger, at)))
	require.NoError(t, s.Forget(ctx, "c1", "n1", entities.RegistryRoleOwner))
	require.NoError(t, s.Forget(ctx, "c1", "missing", entities.RegistryRoleOwner))

	owned, err := s.List(ctx, "c1", entities.RegistryRoleOwner)
	require.NoError(t, err)
	assert.Empty(t, owned)

	pledged, err := s.List(ctx, "c1", entities.RegistryRolePledger)
	require.NoError(t, err)
	assert.Len(t, pledged, 1)
}

func TestStore_RejectsUnknownRole(t *testing.T) {
	s := openTestStore(t)
	err := s.Record(context.Background(), entry("c1", "n1", "admin", time.Now()))
	assert.Error(t, err)
}
