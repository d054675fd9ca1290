package usecase

import (
	"context"
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"athwela/internal/usecase/interfaces"
)

// Routing keys on the events exchange.
const (
	EventNeedCreated         = "need.created"
	EventNeedPledged         = "need.pledged"
	EventNeedPledgeCancelled = "need.pledge_cancelled"
	EventNeedReceived        = "need.received"
	EventNeedReopened        = "need.reopened"
	EventNeedUpdated         = "need.updated"
	EventRecordUpdated       = "record.updated"
	EventRecordDeleted       = "record.deleted"
	EventVolunteerEventNew   = "event.created"
	EventVolunteerRegistered = "event.registered"
)

const defaultMaxRetries = 5

// publish never fails the caller; a lost event only costs downstream freshness.
func publish(ctx context.Context, pub interfaces.IEventPublisher, routingKey string, body interface{}) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, routingKey, body); err != nil {
		log.Printf("[events][usecase] publish failed routing_key=%s err=%v", routingKey, err)
	}
}

// backoff waits a short jittered delay that grows with attempt, or until ctx is done.
func backoff(ctx context.Context, attempt int) error {
	d := rand.N(time.Duration(attempt)*5*time.Millisecond) + time.Millisecond
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// runTransaction re-runs a versioned read-modify-write until it lands, the body
// fails, or maxRetries conflicts have been seen. found reports whether the
// transaction saw a stored document; a zero result maps to notFound.
func runTransaction[T any](
	ctx context.Context,
	kind string,
	maxRetries int,
	op, id string,
	notFound error,
	transact func() (T, error),
	found func(T) bool,
) (T, error) {
	var zero T
	for attempt := 1; ; attempt++ {
		v, err := transact()
		if err == nil {
			if !found(v) {
				log.Printf("[%s][usecase] %s not found id=%s", kind, op, id)
				return zero, notFound
			}
			return v, nil
		}
		if !errors.Is(err, interfaces.ErrConflict) {
			return zero, err
		}
		if attempt >= maxRetries {
			log.Printf("[%s][usecase] %s giving up after conflicts id=%s attempts=%d", kind, op, id, attempt)
			return zero, ErrConflict
		}
		log.Printf("[%s][usecase] %s conflict id=%s attempt=%d", kind, op, id, attempt)
		if err := backoff(ctx, attempt); err != nil {
			return zero, err
		}
	}
}
