package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"
)

// RegistrySession is one client's view of the local post/pledge registry.
//
// It is built per request from the client id and handed to the operations that
// need it. A nil session, or one without a client id, is anonymous: writes are
// dropped and lookups report nothing.
type RegistrySession struct {
	clientID string
	store    interfaces.IRegistryStore
	now      func() time.Time
}

func NewRegistrySession(store interfaces.IRegistryStore, clientID string) *RegistrySession {
	return &RegistrySession{
		clientID: strings.TrimSpace(clientID),
		store:    store,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *RegistrySession) anonymous() bool {
	return s == nil || s.store == nil || s.clientID == ""
}

func (s *RegistrySession) ClientID() string {
	if s == nil {
		return ""
	}
	return s.clientID
}

// Record marks id under role. Recording the same pair twice is a no-op.
func (s *RegistrySession) Record(ctx context.Context, id string, role entities.RegistryRole) error {
	if s.anonymous() || id == "" {
		return nil
	}
	if !role.Valid() {
		return ErrInvalidRole
	}
	return s.store.Record(ctx, entities.RegistryEntry{
		ClientID:   s.clientID,
		RecordID:   id,
		Role:       role,
		RecordedAt: s.now(),
	})
}

// Forget drops id from the client's own posts.
func (s *RegistrySession) Forget(ctx context.Context, id string) error {
	if s.anonymous() || id == "" {
		return nil
	}
	return s.store.Forget(ctx, s.clientID, id, entities.RegistryRoleOwner)
}

func (s *RegistrySession) Contains(ctx context.Context, id string, role entities.RegistryRole) (bool, error) {
	if s.anonymous() {
		return false, nil
	}
	return s.store.Contains(ctx, s.clientID, id, role)
}

func (s *RegistrySession) List(ctx context.Context, role entities.RegistryRole) ([]entities.RegistryEntry, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}
	if s.anonymous() {
		return []entities.RegistryEntry{}, nil
	}
	return s.store.List(ctx, s.clientID, role)
}

// ids returns the set of record ids the client holds under role.
func (s *RegistrySession) ids(ctx context.Context, role entities.RegistryRole) (map[string]struct{}, error) {
	out := map[string]struct{}{}
	if s.anonymous() {
		return out, nil
	}
	entries, err := s.store.List(ctx, s.clientID, role)
	if err != nil {
		return out, err
	}
	for _, e := range entries {
		out[e.RecordID] = struct{}{}
	}
	return out, nil
}

// remember records and only logs on failure; the registry never fails the caller's operation.
func (s *RegistrySession) remember(ctx context.Context, component, id string, role entities.RegistryRole) {
	if err := s.Record(ctx, id, role); err != nil {
		log.Printf("[%s][usecase] registry record failed client_id=%s record_id=%s role=%s err=%v", component, s.ClientID(), id, role, err)
	}
}

func (s *RegistrySession) forget(ctx context.Context, component, id string) {
	if err := s.Forget(ctx, id); err != nil {
		log.Printf("[%s][usecase] registry forget failed client_id=%s record_id=%s err=%v", component, s.ClientID(), id, err)
	}
}

// IRegistryUseCase exposes a client's registry over HTTP.
type IRegistryUseCase interface {
	Session(clientID string) *RegistrySession
	List(ctx context.Context, session *RegistrySession, role entities.RegistryRole) ([]entities.RegistryEntry, error)
}

type RegistryUseCase struct {
	store interfaces.IRegistryStore
}

var _ IRegistryUseCase = (*RegistryUseCase)(nil)

func NewRegistryUseCase(store interfaces.IRegistryStore) *RegistryUseCase {
	return &RegistryUseCase{store: store}
}

// Session builds the per-request registry view for clientID.
func (u *RegistryUseCase) Session(clientID string) *RegistrySession {
	return NewRegistrySession(u.store, clientID)
}

func (u *RegistryUseCase) List(ctx context.Context, session *RegistrySession, role entities.RegistryRole) ([]entities.RegistryEntry, error) {
	return session.List(ctx, role)
}
