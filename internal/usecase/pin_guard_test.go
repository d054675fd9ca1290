package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"athwela/internal/domain/entities"
	"athwela/internal/infrastructure/ratelimit"
	"athwela/internal/security/pin"
	"athwela/internal/usecase/interfaces"
	mock_interfaces "athwela/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type guardFixture struct {
	guard     *PinGuard
	store     *mock_interfaces.MockISecuredRecordStore
	limiter   *mock_interfaces.MockIAttemptLimiter
	publisher *mock_interfaces.MockIEventPublisher
	hash      string
}

func newGuardFixture(t *testing.T, collection string) guardFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mock_interfaces.NewMockISecuredRecordStore(ctrl)
	limiter := mock_interfaces.NewMockIAttemptLimiter(ctrl)
	publisher := mock_interfaces.NewMockIEventPublisher(ctrl)
	store.EXPECT().Collection().Return(collection).AnyTimes()

	hasher := pin.NewHasher(bcrypt.MinCost)
	hash, err := hasher.Hash("1234")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return guardFixture{
		guard:     NewPinGuard(hasher, limiter, publisher, store),
		store:     store,
		limiter:   limiter,
		publisher: publisher,
		hash:      hash,
	}
}

func TestPinGuard_AuthorizedUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown collection", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionPeople)
		err := f.guard.AuthorizedUpdate(ctx, "accounts", "id", "1234", entities.Patch{"name": "x"})
		if !errors.Is(err, ErrUnknownCollection) {
			t.Fatalf("expected ErrUnknownCollection, got %v", err)
		}
	})

	t.Run("malformed pin rejected before store", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionPeople)
		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionPeople, "p-1", "", entities.Patch{"name": "x"})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("only protected fields", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionPeople)
		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionPeople, "p-1", "1234", entities.Patch{"id": "other", "secret_pin": "0000", "created_at": "x"})
		if !errors.Is(err, ErrInvalidPatch) {
			t.Fatalf("expected ErrInvalidPatch, got %v", err)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionPeople)
		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionPeople, "p-1", "1234", entities.Patch{"admin": true})
		if !errors.Is(err, ErrInvalidPatch) {
			t.Fatalf("expected ErrInvalidPatch, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionPeople)
		f.store.EXPECT().Lock(gomock.Any(), "p-1").Return(entities.RecordLock{}, nil)
		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionPeople, "p-1", "1234", entities.Patch{"status": "SAFE"})
		if !errors.Is(err, ErrRecordNotFound) {
			t.Fatalf("expected ErrRecordNotFound, got %v", err)
		}
	})

	t.Run("record without pin never authorizes", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionPeople)
		f.store.EXPECT().Lock(gomock.Any(), "p-1").Return(entities.RecordLock{ID: "p-1", Version: 2}, nil)
		f.limiter.EXPECT().Acquire(gomock.Any(), "people:p-1").Return(true, nil)
		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionPeople, "p-1", "1234", entities.Patch{"status": "SAFE"})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("wrong pin never writes and counts the failure", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionPeople)
		f.store.EXPECT().Lock(gomock.Any(), "p-1").Return(entities.RecordLock{ID: "p-1", SecretPinHash: f.hash, Version: 2}, nil)
		f.limiter.EXPECT().Acquire(gomock.Any(), "people:p-1").Return(true, nil)
		f.store.EXPECT().ApplyPatch(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionPeople, "p-1", "0000", entities.Patch{"status": "SAFE"})
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("locked out", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionPeople)
		f.store.EXPECT().Lock(gomock.Any(), "p-1").Return(entities.RecordLock{ID: "p-1", SecretPinHash: f.hash, Version: 2}, nil)
		f.limiter.EXPECT().Acquire(gomock.Any(), "people:p-1").Return(false, nil)

		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionPeople, "p-1", "1234", entities.Patch{"status": "SAFE"})
		if !errors.Is(err, ErrTooManyAttempts) {
			t.Fatalf("expected ErrTooManyAttempts, got %v", err)
		}
	})

	t.Run("success strips protected fields and writes on read version", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionPeople)
		f.store.EXPECT().Lock(gomock.Any(), "p-1").Return(entities.RecordLock{ID: "p-1", SecretPinHash: f.hash, Version: 2}, nil)
		f.limiter.EXPECT().Acquire(gomock.Any(), "people:p-1").Return(true, nil)
		f.limiter.EXPECT().Reset(gomock.Any(), "people:p-1").Return(nil)
		f.store.EXPECT().ApplyPatch(gomock.Any(), "p-1", int64(2), entities.Patch{"status": "SAFE"}).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), EventRecordUpdated, gomock.Any()).Return(nil)

		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionPeople, "p-1", "1234", entities.Patch{
			"status":     "SAFE",
			"id":         "hijack",
			"secret_pin": "0000",
			"created_at": "1970-01-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("need lifecycle fields are stripped", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionNeeds)
		f.store.EXPECT().Lock(gomock.Any(), "n-1").Return(entities.RecordLock{ID: "n-1", SecretPinHash: f.hash, Version: 5}, nil)
		f.limiter.EXPECT().Acquire(gomock.Any(), "needs:n-1").Return(true, nil)
		f.limiter.EXPECT().Reset(gomock.Any(), "needs:n-1").Return(nil)
		f.store.EXPECT().ApplyPatch(gomock.Any(), "n-1", int64(5), entities.Patch{"quantity": 12}).Return(nil)
		f.publisher.EXPECT().Publish(gomock.Any(), EventNeedUpdated, gomock.Any()).Return(nil)

		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionNeeds, "n-1", "1234", entities.Patch{
			"quantity":        float64(12),
			"pledges":         []any{},
			"received_amount": float64(99),
			"status":          "completed",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative quantity", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionNeeds)
		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionNeeds, "n-1", "1234", entities.Patch{"quantity": float64(-1)})
		if !errors.Is(err, ErrInvalidPatch) {
			t.Fatalf("expected ErrInvalidPatch, got %v", err)
		}
	})

	t.Run("conflict re-runs the check", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionVolunteers)
		gomock.InOrder(
			f.store.EXPECT().Lock(gomock.Any(), "v-1").Return(entities.RecordLock{ID: "v-1", SecretPinHash: f.hash, Version: 1}, nil),
			f.store.EXPECT().ApplyPatch(gomock.Any(), "v-1", int64(1), gomock.Any()).Return(interfaces.ErrConflict),
			f.store.EXPECT().Lock(gomock.Any(), "v-1").Return(entities.RecordLock{ID: "v-1", SecretPinHash: f.hash, Version: 2}, nil),
			f.store.EXPECT().ApplyPatch(gomock.Any(), "v-1", int64(2), gomock.Any()).Return(nil),
		)
		f.limiter.EXPECT().Acquire(gomock.Any(), "volunteers:v-1").Return(true, nil).Times(2)
		f.limiter.EXPECT().Reset(gomock.Any(), "volunteers:v-1").Return(nil).Times(2)
		f.publisher.EXPECT().Publish(gomock.Any(), EventRecordUpdated, gomock.Any()).Return(nil)

		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionVolunteers, "v-1", "1234", entities.Patch{"status": "BUSY"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("conflict exhausts retries", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionVolunteers)
		f.guard.WithMaxRetries(2)
		f.store.EXPECT().Lock(gomock.Any(), "v-1").Return(entities.RecordLock{ID: "v-1", SecretPinHash: f.hash, Version: 1}, nil).Times(2)
		f.store.EXPECT().ApplyPatch(gomock.Any(), "v-1", int64(1), gomock.Any()).Return(interfaces.ErrConflict).Times(2)
		f.limiter.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return(true, nil).Times(2)
		f.limiter.EXPECT().Reset(gomock.Any(), gomock.Any()).Return(nil).Times(2)

		err := f.guard.AuthorizedUpdate(ctx, entities.CollectionVolunteers, "v-1", "1234", entities.Patch{"status": "BUSY"})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestPinGuard_AuthorizedDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("wrong pin leaves the record", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionNeeds)
		f.store.EXPECT().Lock(gomock.Any(), "n-1").Return(entities.RecordLock{ID: "n-1", SecretPinHash: f.hash, Version: 3}, nil)
		f.limiter.EXPECT().Acquire(gomock.Any(), "needs:n-1").Return(true, nil)
		f.store.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		err := f.guard.AuthorizedDelete(ctx, nil, entities.CollectionNeeds, "n-1", "0000")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("empty pin on record without pin", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionServiceRequests)
		err := f.guard.AuthorizedDelete(ctx, nil, entities.CollectionServiceRequests, "s-1", "")
		if !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("success forgets ownership and publishes", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionNeeds)
		ctrl := gomock.NewController(t)
		registry := mock_interfaces.NewMockIRegistryStore(ctrl)

		f.store.EXPECT().Lock(gomock.Any(), "n-1").Return(entities.RecordLock{ID: "n-1", SecretPinHash: f.hash, Version: 3}, nil)
		f.limiter.EXPECT().Acquire(gomock.Any(), "needs:n-1").Return(true, nil)
		f.limiter.EXPECT().Reset(gomock.Any(), "needs:n-1").Return(nil)
		f.store.EXPECT().Delete(gomock.Any(), "n-1", int64(3)).Return(nil)
		registry.EXPECT().Forget(gomock.Any(), "client-a", "n-1", entities.RegistryRoleOwner).Return(errors.New("io"))
		f.publisher.EXPECT().Publish(gomock.Any(), EventRecordDeleted, gomock.Any()).Return(errors.New("broker down"))

		err := f.guard.AuthorizedDelete(ctx, NewRegistrySession(registry, "client-a"), entities.CollectionNeeds, "n-1", "1234")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		f := newGuardFixture(t, entities.CollectionPeople)
		f.store.EXPECT().Lock(gomock.Any(), "p-1").Return(entities.RecordLock{}, errors.New("throttled"))
		err := f.guard.AuthorizedDelete(ctx, nil, entities.CollectionPeople, "p-1", "1234")
		if err == nil || err.Error() != "throttled" {
			t.Fatalf("expected throttled error, got %v", err)
		}
	})
}

func TestPinGuard_AuthorizeWithoutLimiter(t *testing.T) {
	hasher := pin.NewHasher(bcrypt.MinCost)
	hash, _ := hasher.Hash("4321")
	g := NewPinGuard(hasher, nil, nil)

	if err := g.Authorize(context.Background(), "k", hash, "4321"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.Authorize(context.Background(), "k", hash, "1234"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := g.Authorize(context.Background(), "k", "", ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPinGuard_AuthorizedUpdate_RejectsMistypedFields(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name       string
		collection string
		patch      entities.Patch
	}{
		{"demographics as string", entities.CollectionNeeds, entities.Patch{"demographics": "lots"}},
		{"demographics with unknown key", entities.CollectionNeeds, entities.Patch{"demographics": map[string]any{"elders": float64(2)}}},
		{"coordinates as string", entities.CollectionNeeds, entities.Patch{"coordinates": "nowhere"}},
		{"quantity out of range", entities.CollectionNeeds, entities.Patch{"quantity": float64(1e20)}},
		{"quantity fractional", entities.CollectionNeeds, entities.Patch{"quantity": 1.5}},
		{"quantity as string", entities.CollectionNeeds, entities.Patch{"quantity": "12"}},
		{"unit as number", entities.CollectionNeeds, entities.Patch{"unit": float64(3)}},
		{"null field", entities.CollectionNeeds, entities.Patch{"description": nil}},
		{"last seen date as bool", entities.CollectionPeople, entities.Patch{"last_seen_date": true}},
		{"age too large", entities.CollectionPeople, entities.Patch{"age": float64(1 << 40)}},
		{"skills as string", entities.CollectionVolunteers, entities.Patch{"skills": "first aid"}},
		{"skills with numbers", entities.CollectionVolunteers, entities.Patch{"skills": []any{"first aid", float64(2)}}},
		{"details as list", entities.CollectionServiceRequests, entities.Patch{"details": []any{"x"}}},
		{"location as string", entities.CollectionServiceRequests, entities.Patch{"location": "Colombo"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// No store expectations: validation must fail before any read.
			f := newGuardFixture(t, tc.collection)
			err := f.guard.AuthorizedUpdate(ctx, tc.collection, "r-1", "1234", tc.patch)
			if !errors.Is(err, ErrInvalidPatch) {
				t.Fatalf("expected ErrInvalidPatch, got %v", err)
			}
		})
	}
}

func TestPinGuard_AuthorizedUpdate_NormalizesNestedFields(t *testing.T) {
	f := newGuardFixture(t, entities.CollectionNeeds)
	f.store.EXPECT().Lock(gomock.Any(), "n-1").Return(entities.RecordLock{ID: "n-1", SecretPinHash: f.hash, Version: 1}, nil)
	f.limiter.EXPECT().Acquire(gomock.Any(), "needs:n-1").Return(true, nil)
	f.limiter.EXPECT().Reset(gomock.Any(), "needs:n-1").Return(nil)
	f.store.EXPECT().ApplyPatch(gomock.Any(), "n-1", int64(1), entities.Patch{
		"demographics":  entities.Demographics{Men: 2, Women: 3, Children: 4},
		"coordinates":   entities.Coordinates{Lat: 6.9, Lng: 79.8},
		"people_needed": 7,
	}).Return(nil)
	f.publisher.EXPECT().Publish(gomock.Any(), EventNeedUpdated, gomock.Any()).Return(nil)

	err := f.guard.AuthorizedUpdate(context.Background(), entities.CollectionNeeds, "n-1", "1234", entities.Patch{
		"demographics":  map[string]any{"men": float64(2), "women": float64(3), "children": float64(4)},
		"coordinates":   map[string]any{"lat": 6.9, "lng": 79.8},
		"people_needed": float64(7),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

type countingHasher struct {
	interfaces.IPinHasher
	mu       sync.Mutex
	verifies int
}

func (h *countingHasher) Verify(hash, p string) error {
	h.mu.Lock()
	h.verifies++
	h.mu.Unlock()
	return h.IPinHasher.Verify(hash, p)
}

func TestPinGuard_ParallelGuessesStayWithinBudget(t *testing.T) {
	base := pin.NewHasher(bcrypt.MinCost)
	hash, err := base.Hash("1234")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	hasher := &countingHasher{IPinHasher: base}
	g := NewPinGuard(hasher, ratelimit.NewMemoryAttemptLimiter(3, time.Minute), nil)

	var wg sync.WaitGroup
	results := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- g.Authorize(context.Background(), "needs:n-1", hash, "0000")
		}()
	}
	wg.Wait()
	close(results)

	var unauthorized, blocked int
	for err := range results {
		switch {
		case errors.Is(err, ErrUnauthorized):
			unauthorized++
		case errors.Is(err, ErrTooManyAttempts):
			blocked++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if hasher.verifies != 3 || unauthorized != 3 || blocked != 17 {
		t.Fatalf("verifies=%d unauthorized=%d blocked=%d, want 3/3/17", hasher.verifies, unauthorized, blocked)
	}
	if err := g.Authorize(context.Background(), "needs:n-1", hash, "1234"); !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected the right pin to stay locked out, got %v", err)
	}
}
