package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"athwela/internal/domain/entities"
	"athwela/internal/security/pin"
	"athwela/internal/usecase/interfaces"
)

// IPinGuard gates every update and delete of a PIN-protected record.
//
// Flow per call:
//   - resolve the collection and sanitize the patch (no store access yet)
//   - read the record's pin hash and version
//   - verify the presented PIN against the hash
//   - write conditionally on the version read in the previous step
//
// A lost race between check and write re-runs the whole check.

type IPinGuard interface {
	AuthorizedUpdate(ctx context.Context, collection, id, p string, patch entities.Patch) error
	AuthorizedDelete(ctx context.Context, session *RegistrySession, collection, id, p string) error
	Authorize(ctx context.Context, key, hash, p string) error
}

type PinGuard struct {
	stores     map[string]interfaces.ISecuredRecordStore
	policies   map[string]patchPolicy
	hasher     interfaces.IPinHasher
	limiter    interfaces.IAttemptLimiter
	publisher  interfaces.IEventPublisher
	maxRetries int
	now        func() time.Time
}

var _ IPinGuard = (*PinGuard)(nil)

func NewPinGuard(
	hasher interfaces.IPinHasher,
	limiter interfaces.IAttemptLimiter,
	publisher interfaces.IEventPublisher,
	stores ...interfaces.ISecuredRecordStore,
) *PinGuard {
	g := &PinGuard{
		stores:     make(map[string]interfaces.ISecuredRecordStore, len(stores)),
		policies:   defaultPatchPolicies(),
		hasher:     hasher,
		limiter:    limiter,
		publisher:  publisher,
		maxRetries: defaultMaxRetries,
		now:        func() time.Time { return time.Now().UTC() },
	}
	for _, s := range stores {
		g.stores[s.Collection()] = s
	}
	return g
}

// WithMaxRetries bounds how many times a check-and-write is re-run after a lost race.
func (g *PinGuard) WithMaxRetries(n int) *PinGuard {
	if n > 0 {
		g.maxRetries = n
	}
	return g
}

func attemptKey(collection, id string) string {
	return collection + ":" + id
}

// Authorize verifies p against hash. Every verification spends one attempt from the
// key's budget before bcrypt runs; a successful match refunds the budget.
// A record without a hash never authorizes.
func (g *PinGuard) Authorize(ctx context.Context, key, hash, p string) error {
	if g.limiter != nil {
		allowed, err := g.limiter.Acquire(ctx, key)
		if err != nil {
			log.Printf("[guard][usecase] attempt limiter unavailable key=%s err=%v", key, err)
		} else if !allowed {
			log.Printf("[guard][usecase] attempts exhausted key=%s", key)
			return ErrTooManyAttempts
		}
	}

	if hash == "" {
		log.Printf("[guard][usecase] record has no pin key=%s", key)
		return ErrUnauthorized
	}
	if err := g.hasher.Verify(hash, p); err != nil {
		if !errors.Is(err, pin.ErrMismatch) && !errors.Is(err, pin.ErrNotSet) {
			return err
		}
		log.Printf("[guard][usecase] pin mismatch key=%s", key)
		return ErrUnauthorized
	}

	if g.limiter != nil {
		if err := g.limiter.Reset(ctx, key); err != nil {
			log.Printf("[guard][usecase] failed resetting attempts key=%s err=%v", key, err)
		}
	}
	return nil
}

func (g *PinGuard) resolve(collection string) (interfaces.ISecuredRecordStore, patchPolicy, error) {
	store, ok := g.stores[collection]
	if !ok {
		return nil, patchPolicy{}, ErrUnknownCollection
	}
	policy, ok := g.policies[collection]
	if !ok {
		return nil, patchPolicy{}, ErrUnknownCollection
	}
	return store, policy, nil
}

// lockAndAuthorize loads the record and checks p. Not-found and unauthorized are final.
func (g *PinGuard) lockAndAuthorize(ctx context.Context, store interfaces.ISecuredRecordStore, id, p string) (entities.RecordLock, error) {
	lock, err := store.Lock(ctx, id)
	if err != nil {
		log.Printf("[guard][usecase] failed loading record collection=%s id=%s err=%v", store.Collection(), id, err)
		return entities.RecordLock{}, err
	}
	if lock.ID == "" {
		log.Printf("[guard][usecase] record not found collection=%s id=%s", store.Collection(), id)
		return entities.RecordLock{}, ErrRecordNotFound
	}
	if err := g.Authorize(ctx, attemptKey(store.Collection(), id), lock.SecretPinHash, p); err != nil {
		return entities.RecordLock{}, err
	}
	return lock, nil
}

// guarded runs check-and-write until the write wins or retries run out.
func (g *PinGuard) guarded(ctx context.Context, store interfaces.ISecuredRecordStore, id, p string, write func(version int64) error) error {
	for attempt := 1; ; attempt++ {
		lock, err := g.lockAndAuthorize(ctx, store, id, p)
		if err != nil {
			return err
		}
		err = write(lock.Version)
		if err == nil {
			return nil
		}
		if !errors.Is(err, interfaces.ErrConflict) {
			return err
		}
		if attempt >= g.maxRetries {
			log.Printf("[guard][usecase] giving up after conflicts collection=%s id=%s attempts=%d", store.Collection(), id, attempt)
			return ErrConflict
		}
		log.Printf("[guard][usecase] write conflict collection=%s id=%s attempt=%d", store.Collection(), id, attempt)
		if err := backoff(ctx, attempt); err != nil {
			return err
		}
	}
}

func (g *PinGuard) AuthorizedUpdate(ctx context.Context, collection, id, p string, patch entities.Patch) error {
	store, policy, err := g.resolve(collection)
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}
	// A malformed PIN cannot match any stored hash.
	if !pin.Valid(p) {
		log.Printf("[guard][usecase] malformed pin collection=%s id=%s", collection, id)
		return ErrUnauthorized
	}
	clean, err := policy.sanitize(collection, patch)
	if err != nil {
		return err
	}

	err = g.guarded(ctx, store, id, p, func(version int64) error {
		return store.ApplyPatch(ctx, id, version, clean)
	})
	if err != nil {
		return err
	}
	log.Printf("[guard][usecase] record updated collection=%s id=%s fields=%d", collection, id, len(clean))

	routingKey := EventRecordUpdated
	if collection == entities.CollectionNeeds {
		routingKey = EventNeedUpdated
	}
	publish(ctx, g.publisher, routingKey, entities.RecordEvent{
		Type:       routingKey,
		Collection: collection,
		RecordID:   id,
		OccurredAt: g.now(),
	})
	return nil
}

func (g *PinGuard) AuthorizedDelete(ctx context.Context, session *RegistrySession, collection, id, p string) error {
	store, _, err := g.resolve(collection)
	if err != nil {
		return err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRecordID
	}
	if !pin.Valid(p) {
		log.Printf("[guard][usecase] malformed pin collection=%s id=%s", collection, id)
		return ErrUnauthorized
	}

	err = g.guarded(ctx, store, id, p, func(version int64) error {
		return store.Delete(ctx, id, version)
	})
	if err != nil {
		return err
	}
	log.Printf("[guard][usecase] record deleted collection=%s id=%s", collection, id)

	session.forget(ctx, "guard", id)
	publish(ctx, g.publisher, EventRecordDeleted, entities.RecordEvent{
		Type:       EventRecordDeleted,
		Collection: collection,
		RecordID:   id,
		OccurredAt: g.now(),
	})
	return nil
}
