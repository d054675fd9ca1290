package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IVolunteerEventUseCase manages volunteer drives.
//
// Moderators create events; anyone may register. Registration is a versioned
// read-modify-write capped at the event's required volunteers, so concurrent
// sign-ups never lose a count or overfill an event.

type IVolunteerEventUseCase interface {
	Create(ctx context.Context, e entities.VolunteerEvent) (entities.VolunteerEvent, error)
	GetByID(ctx context.Context, id string) (entities.VolunteerEvent, error)
	List(ctx context.Context) ([]entities.VolunteerEvent, error)
	Register(ctx context.Context, eventID string) (entities.VolunteerEvent, error)
}

type VolunteerEventUseCase struct {
	repo       interfaces.IVolunteerEventRepository
	publisher  interfaces.IEventPublisher
	maxRetries int
	now        func() time.Time
	newID      func() string
}

var _ IVolunteerEventUseCase = (*VolunteerEventUseCase)(nil)

func NewVolunteerEventUseCase(repo interfaces.IVolunteerEventRepository, publisher interfaces.IEventPublisher, maxRetries int) *VolunteerEventUseCase {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	return &VolunteerEventUseCase{
		repo:       repo,
		publisher:  publisher,
		maxRetries: maxRetries,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

func (u *VolunteerEventUseCase) Create(ctx context.Context, e entities.VolunteerEvent) (entities.VolunteerEvent, error) {
	e.Title = strings.TrimSpace(e.Title)
	e.Date = strings.TrimSpace(e.Date)
	e.Type = entities.VolunteerEventType(strings.ToUpper(strings.TrimSpace(string(e.Type))))
	if e.Title == "" || e.Date == "" || !e.Type.Valid() || e.RequiredVolunteers <= 0 {
		return entities.VolunteerEvent{}, ErrInvalidEvent
	}

	now := u.now()
	e.ID = u.newID()
	e.RegisteredVolunteers = 0
	e.CreatedAt = now
	e.UpdatedAt = now
	e.Version = 0

	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[event][usecase] failed creating event err=%v", err)
		return entities.VolunteerEvent{}, err
	}
	log.Printf("[event][usecase] event created event_id=%s type=%s required=%d", created.ID, created.Type, created.RequiredVolunteers)

	publish(ctx, u.publisher, EventVolunteerEventNew, entities.NewVolunteerEventMessage(EventVolunteerEventNew, created, now))
	return created, nil
}

func (u *VolunteerEventUseCase) GetByID(ctx context.Context, id string) (entities.VolunteerEvent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.VolunteerEvent{}, ErrInvalidEventID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.VolunteerEvent{}, err
	}
	if e.ID == "" {
		return entities.VolunteerEvent{}, ErrEventNotFound
	}
	return e, nil
}

func (u *VolunteerEventUseCase) List(ctx context.Context) ([]entities.VolunteerEvent, error) {
	return u.repo.List(ctx)
}

// Register takes one volunteer slot on the event.
func (u *VolunteerEventUseCase) Register(ctx context.Context, eventID string) (entities.VolunteerEvent, error) {
	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return entities.VolunteerEvent{}, ErrInvalidEventID
	}

	now := u.now()
	updated, err := runTransaction(ctx, "event", u.maxRetries, "register", eventID, ErrEventNotFound,
		func() (entities.VolunteerEvent, error) {
			return u.repo.Transact(ctx, eventID, func(e entities.VolunteerEvent) (entities.VolunteerEvent, error) {
				if e.Full() {
					return entities.VolunteerEvent{}, ErrEventFull
				}
				e.RegisteredVolunteers++
				e.UpdatedAt = now
				return e, nil
			})
		},
		func(e entities.VolunteerEvent) bool { return e.ID != "" },
	)
	if err != nil {
		if errors.Is(err, ErrEventFull) {
			log.Printf("[event][usecase] registration rejected, event full event_id=%s", eventID)
		}
		return entities.VolunteerEvent{}, err
	}
	log.Printf("[event][usecase] volunteer registered event_id=%s registered=%d required=%d",
		eventID, updated.RegisteredVolunteers, updated.RequiredVolunteers)

	publish(ctx, u.publisher, EventVolunteerRegistered, entities.NewVolunteerEventMessage(EventVolunteerRegistered, updated, now))
	return updated, nil
}
