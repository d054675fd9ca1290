package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"
)

// IAdminUseCase is the moderator override: no PIN, no grace period.
// Callers are authenticated upstream by the admin bearer token.

type IAdminUseCase interface {
	ForceDelete(ctx context.Context, collection, id string) error
	ForceClose(ctx context.Context, needID string) (entities.Need, error)
	ForceReopen(ctx context.Context, needID string) (entities.Need, error)
}

type AdminUseCase struct {
	needs      interfaces.INeedRepository
	stores     map[string]interfaces.ISecuredRecordStore
	publisher  interfaces.IEventPublisher
	maxRetries int
	now        func() time.Time
}

var _ IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(needs interfaces.INeedRepository, publisher interfaces.IEventPublisher, maxRetries int, stores ...interfaces.ISecuredRecordStore) *AdminUseCase {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	u := &AdminUseCase{
		needs:      needs,
		stores:     make(map[string]interfaces.ISecuredRecordStore, len(stores)),
		publisher:  publisher,
		maxRetries: maxRetries,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, s := range stores {
		u.stores[s.Collection()] = s
	}
	return u
}

func (u *AdminUseCase) ForceDelete(ctx context.Context, collection, id string) error {
	store, ok := u.stores[collection]
	if !ok {
		return ErrUnknownCollection
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}

	for attempt := 1; ; attempt++ {
		lock, err := store.Lock(ctx, id)
		if err != nil {
			return err
		}
		if lock.ID == "" {
			return ErrRecordNotFound
		}
		err = store.Delete(ctx, id, lock.Version)
		if err == nil {
			break
		}
		if !errors.Is(err, interfaces.ErrConflict) {
			return err
		}
		if attempt >= u.maxRetries {
			return ErrConflict
		}
		if err := backoff(ctx, attempt); err != nil {
			return err
		}
	}
	log.Printf("[admin][usecase] record force-deleted collection=%s id=%s", collection, id)

	publish(ctx, u.publisher, EventRecordDeleted, entities.RecordEvent{
		Type:       EventRecordDeleted,
		Collection: collection,
		RecordID:   id,
		OccurredAt: u.now(),
	})
	return nil
}

func (u *AdminUseCase) ForceClose(ctx context.Context, needID string) (entities.Need, error) {
	needID = strings.TrimSpace(needID)
	if needID == "" {
		return entities.Need{}, ErrInvalidNeedID
	}
	now := u.now()
	updated, err := runNeedTransaction(ctx, u.needs, u.maxRetries, "force-close", needID, func(n entities.Need) (entities.Need, error) {
		n.Closed = true
		n.UpdatedAt = now
		return n, nil
	})
	if err != nil {
		return entities.Need{}, err
	}
	log.Printf("[admin][usecase] need force-closed need_id=%s", needID)
	publish(ctx, u.publisher, EventNeedReceived, entities.NewNeedEvent(EventNeedReceived, updated, now))
	return updated, nil
}

func (u *AdminUseCase) ForceReopen(ctx context.Context, needID string) (entities.Need, error) {
	needID = strings.TrimSpace(needID)
	if needID == "" {
		return entities.Need{}, ErrInvalidNeedID
	}
	now := u.now()
	updated, err := runNeedTransaction(ctx, u.needs, u.maxRetries, "force-reopen", needID, func(n entities.Need) (entities.Need, error) {
		return reopened(n, now), nil
	})
	if err != nil {
		return entities.Need{}, err
	}
	log.Printf("[admin][usecase] need force-reopened need_id=%s", needID)
	publish(ctx, u.publisher, EventNeedReopened, entities.NewNeedEvent(EventNeedReopened, updated, now))
	return updated, nil
}
