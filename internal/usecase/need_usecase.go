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

	"github.com/google/uuid"
)

const DefaultReopenGracePeriod = 48 * time.Hour

// INeedUseCase is the need lifecycle engine.
//
// State machine (status is derived, never stored):
//   - pending -> partially_pledged -> fully_pledged through Pledge
//   - any -> completed through Receive
//   - any -> pending through Reopen (clears every pledge)
//
// Every mutation is a read-modify-write transaction against the store, re-run on
// a lost race up to a bounded number of attempts.

type INeedUseCase interface {
	Create(ctx context.Context, session *RegistrySession, n entities.Need, ownerPin string) (entities.Need, error)
	GetByID(ctx context.Context, id string) (entities.Need, error)
	List(ctx context.Context, session *RegistrySession) ([]entities.Need, error)
	Pledge(ctx context.Context, session *RegistrySession, needID string, amount int, donorPin string) (entities.Need, error)
	CancelPledge(ctx context.Context, needID, pledgeID, donorPin string) (entities.Need, error)
	Receive(ctx context.Context, needID string, amount int, ownerPin string) (entities.Need, error)
	Reopen(ctx context.Context, needID, ownerPin string) (entities.Need, error)
}

type NeedConfig struct {
	MaxRetries        int
	ReopenGracePeriod time.Duration
}

type pinAuthorizer interface {
	Authorize(ctx context.Context, key, hash, p string) error
}

type NeedUseCase struct {
	repo      interfaces.INeedRepository
	hasher    interfaces.IPinHasher
	guard     pinAuthorizer
	publisher interfaces.IEventPublisher
	cfg       NeedConfig
	now       func() time.Time
	newID     func() string
}

var _ INeedUseCase = (*NeedUseCase)(nil)

func NewNeedUseCase(
	repo interfaces.INeedRepository,
	hasher interfaces.IPinHasher,
	guard pinAuthorizer,
	publisher interfaces.IEventPublisher,
	cfg NeedConfig,
) *NeedUseCase {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = defaultMaxRetries
	}
	if cfg.ReopenGracePeriod < 0 {
		cfg.ReopenGracePeriod = DefaultReopenGracePeriod
	}
	return &NeedUseCase{
		repo:      repo,
		hasher:    hasher,
		guard:     guard,
		publisher: publisher,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (u *NeedUseCase) Create(ctx context.Context, session *RegistrySession, n entities.Need, ownerPin string) (entities.Need, error) {
	n.Item = strings.TrimSpace(n.Item)
	if n.Item == "" {
		return entities.Need{}, ErrInvalidNeed
	}
	if n.Quantity < 0 {
		return entities.Need{}, ErrInvalidQuantity
	}
	if !pin.Valid(ownerPin) {
		return entities.Need{}, ErrInvalidPin
	}
	if n.Type == "" {
		n.Type = entities.NeedTypeGoods
	}
	if n.Urgency == "" {
		n.Urgency = entities.UrgencyMedium
	}

	hash, err := u.hasher.Hash(ownerPin)
	if err != nil {
		log.Printf("[need][usecase] failed hashing pin err=%v", err)
		return entities.Need{}, err
	}

	now := u.now()
	n.ID = u.newID()
	n.Pledges = nil
	n.ReceivedAmount = 0
	n.Closed = false
	n.SecretPinHash = hash
	n.CreatedAt = now
	n.UpdatedAt = now
	n.Version = 0

	created, err := u.repo.Create(ctx, n)
	if err != nil {
		log.Printf("[need][usecase] failed creating need err=%v", err)
		return entities.Need{}, err
	}
	log.Printf("[need][usecase] need created need_id=%s quantity=%d", created.ID, created.Quantity)

	session.remember(ctx, "need", created.ID, entities.RegistryRoleOwner)
	publish(ctx, u.publisher, EventNeedCreated, entities.NewNeedEvent(EventNeedCreated, created, now))
	return created, nil
}

func (u *NeedUseCase) GetByID(ctx context.Context, id string) (entities.Need, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Need{}, ErrInvalidNeedID
	}
	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Need{}, err
	}
	if n.ID == "" {
		return entities.Need{}, ErrNeedNotFound
	}
	return n, nil
}

// List returns needs newest first. Fully pledged and received needs are only listed
// for a session that owns or pledged to them.
func (u *NeedUseCase) List(ctx context.Context, session *RegistrySession) ([]entities.Need, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	owned, err := session.ids(ctx, entities.RegistryRoleOwner)
	if err != nil {
		log.Printf("[need][usecase] registry lookup failed client_id=%s role=owner err=%v", session.ClientID(), err)
	}
	pledged, err := session.ids(ctx, entities.RegistryRolePledger)
	if err != nil {
		log.Printf("[need][usecase] registry lookup failed client_id=%s role=pledger err=%v", session.ClientID(), err)
	}

	visible := make([]entities.Need, 0, len(all))
	for _, n := range all {
		_, mine := owned[n.ID]
		_, pledgedTo := pledged[n.ID]
		if n.IsPubliclyVisible() || mine || pledgedTo {
			visible = append(visible, n)
		}
	}
	return visible, nil
}

// transact runs fn as a read-modify-write on the need, retrying lost races.
// Errors returned by fn end the loop unchanged.
func (u *NeedUseCase) transact(ctx context.Context, op, needID string, fn func(entities.Need) (entities.Need, error)) (entities.Need, error) {
	return runNeedTransaction(ctx, u.repo, u.cfg.MaxRetries, op, needID, fn)
}

func runNeedTransaction(
	ctx context.Context,
	repo interfaces.INeedRepository,
	maxRetries int,
	op, needID string,
	fn func(entities.Need) (entities.Need, error),
) (entities.Need, error) {
	return runTransaction(ctx, "need", maxRetries, op, needID, ErrNeedNotFound,
		func() (entities.Need, error) { return repo.Transact(ctx, needID, fn) },
		func(n entities.Need) bool { return n.ID != "" },
	)
}

// Pledge commits amount of the need to a donor. The last accepted pledge may take
// the pledged total past the target; once the target is reached further pledges fail.
func (u *NeedUseCase) Pledge(ctx context.Context, session *RegistrySession, needID string, amount int, donorPin string) (entities.Need, error) {
	needID = strings.TrimSpace(needID)
	if needID == "" {
		return entities.Need{}, ErrInvalidNeedID
	}
	if amount <= 0 {
		return entities.Need{}, ErrInvalidAmount
	}
	if !pin.Valid(donorPin) {
		return entities.Need{}, ErrInvalidPin
	}

	hash, err := u.hasher.Hash(donorPin)
	if err != nil {
		log.Printf("[need][usecase] failed hashing pin need_id=%s err=%v", needID, err)
		return entities.Need{}, err
	}
	now := u.now()
	entry := entities.Pledge{ID: u.newID(), Amount: amount, PinHash: hash, PledgedAt: now}

	updated, err := u.transact(ctx, "pledge", needID, func(n entities.Need) (entities.Need, error) {
		if n.Closed || n.PledgedAmount() >= n.Quantity {
			return entities.Need{}, ErrAlreadyFulfilled
		}
		n.Pledges = append(append([]entities.Pledge(nil), n.Pledges...), entry)
		n.UpdatedAt = now
		return n, nil
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyFulfilled) {
			log.Printf("[need][usecase] pledge rejected, already fulfilled need_id=%s", needID)
		}
		return entities.Need{}, err
	}
	log.Printf("[need][usecase] pledge accepted need_id=%s pledge_id=%s amount=%d pledged=%d quantity=%d",
		needID, entry.ID, amount, updated.PledgedAmount(), updated.Quantity)

	session.remember(ctx, "need", needID, entities.RegistryRolePledger)
	publish(ctx, u.publisher, EventNeedPledged, entities.NewNeedEvent(EventNeedPledged, updated, now))
	return updated, nil
}

// CancelPledge removes one pledge entry, authorized by the PIN it was made with.
func (u *NeedUseCase) CancelPledge(ctx context.Context, needID, pledgeID, donorPin string) (entities.Need, error) {
	needID = strings.TrimSpace(needID)
	pledgeID = strings.TrimSpace(pledgeID)
	if needID == "" {
		return entities.Need{}, ErrInvalidNeedID
	}
	if pledgeID == "" {
		return entities.Need{}, ErrInvalidPledgeID
	}
	if !pin.Valid(donorPin) {
		return entities.Need{}, ErrInvalidPin
	}

	now := u.now()
	updated, err := u.transact(ctx, "cancel-pledge", needID, func(n entities.Need) (entities.Need, error) {
		if n.Closed {
			return entities.Need{}, ErrNeedClosed
		}
		idx := -1
		for i, p := range n.Pledges {
			if p.ID == pledgeID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return entities.Need{}, ErrPledgeNotFound
		}
		key := attemptKey(entities.CollectionNeeds, needID) + ":pledge:" + pledgeID
		if err := u.guard.Authorize(ctx, key, n.Pledges[idx].PinHash, donorPin); err != nil {
			return entities.Need{}, err
		}
		kept := make([]entities.Pledge, 0, len(n.Pledges)-1)
		kept = append(kept, n.Pledges[:idx]...)
		kept = append(kept, n.Pledges[idx+1:]...)
		n.Pledges = kept
		n.UpdatedAt = now
		return n, nil
	})
	if err != nil {
		return entities.Need{}, err
	}
	log.Printf("[need][usecase] pledge cancelled need_id=%s pledge_id=%s pledged=%d", needID, pledgeID, updated.PledgedAmount())

	publish(ctx, u.publisher, EventNeedPledgeCancelled, entities.NewNeedEvent(EventNeedPledgeCancelled, updated, now))
	return updated, nil
}

// Receive records delivered goods and closes the need, whatever the quantities say.
func (u *NeedUseCase) Receive(ctx context.Context, needID string, amount int, ownerPin string) (entities.Need, error) {
	needID = strings.TrimSpace(needID)
	if needID == "" {
		return entities.Need{}, ErrInvalidNeedID
	}
	if amount <= 0 {
		return entities.Need{}, ErrInvalidAmount
	}
	if !pin.Valid(ownerPin) {
		return entities.Need{}, ErrInvalidPin
	}

	now := u.now()
	updated, err := u.transact(ctx, "receive", needID, func(n entities.Need) (entities.Need, error) {
		if err := u.guard.Authorize(ctx, attemptKey(entities.CollectionNeeds, needID), n.SecretPinHash, ownerPin); err != nil {
			return entities.Need{}, err
		}
		n.ReceivedAmount += amount
		n.Closed = true
		n.UpdatedAt = now
		return n, nil
	})
	if err != nil {
		return entities.Need{}, err
	}
	log.Printf("[need][usecase] need received need_id=%s amount=%d received=%d", needID, amount, updated.ReceivedAmount)

	publish(ctx, u.publisher, EventNeedReceived, entities.NewNeedEvent(EventNeedReceived, updated, now))
	return updated, nil
}

// Reopen clears every pledge and the closed flag. It is refused while the latest
// pledge is younger than the grace period, giving donors time to deliver.
func (u *NeedUseCase) Reopen(ctx context.Context, needID, ownerPin string) (entities.Need, error) {
	needID = strings.TrimSpace(needID)
	if needID == "" {
		return entities.Need{}, ErrInvalidNeedID
	}
	if !pin.Valid(ownerPin) {
		return entities.Need{}, ErrInvalidPin
	}

	now := u.now()
	updated, err := u.transact(ctx, "reopen", needID, func(n entities.Need) (entities.Need, error) {
		if err := u.guard.Authorize(ctx, attemptKey(entities.CollectionNeeds, needID), n.SecretPinHash, ownerPin); err != nil {
			return entities.Need{}, err
		}
		if last := n.PledgedAt(); last != nil && now.Sub(*last) < u.cfg.ReopenGracePeriod {
			return entities.Need{}, ErrReopenTooEarly
		}
		return reopened(n, now), nil
	})
	if err != nil {
		if errors.Is(err, ErrReopenTooEarly) {
			log.Printf("[need][usecase] reopen refused inside grace period need_id=%s", needID)
		}
		return entities.Need{}, err
	}
	log.Printf("[need][usecase] need reopened need_id=%s", needID)

	publish(ctx, u.publisher, EventNeedReopened, entities.NewNeedEvent(EventNeedReopened, updated, now))
	return updated, nil
}

func reopened(n entities.Need, now time.Time) entities.Need {
	n.Pledges = nil
	n.Closed = false
	n.UpdatedAt = now
	return n
}
