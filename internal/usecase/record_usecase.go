package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"athwela/internal/domain/entities"
	"athwela/internal/security/pin"
	"athwela/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// IRecordUseCase creates and lists the PIN-protected records that have no lifecycle
// of their own: missing-person reports, volunteers and service requests.
// Updates and deletes go through the PIN guard.

type IRecordUseCase interface {
	CreatePerson(ctx context.Context, session *RegistrySession, p entities.Person, secretPin string) (entities.Person, error)
	ListPeople(ctx context.Context) ([]entities.Person, error)
	CreateVolunteer(ctx context.Context, session *RegistrySession, v entities.Volunteer, secretPin string) (entities.Volunteer, error)
	ListVolunteers(ctx context.Context) ([]entities.Volunteer, error)
	CreateServiceRequest(ctx context.Context, session *RegistrySession, r entities.ServiceRequest, secretPin string) (entities.ServiceRequest, error)
	ListServiceRequests(ctx context.Context) ([]entities.ServiceRequest, error)
}

type RecordUseCase struct {
	people     interfaces.IPersonRepository
	volunteers interfaces.IVolunteerRepository
	requests   interfaces.IServiceRequestRepository
	hasher     interfaces.IPinHasher
	now        func() time.Time
	newID      func() string
}

var _ IRecordUseCase = (*RecordUseCase)(nil)

func NewRecordUseCase(
	people interfaces.IPersonRepository,
	volunteers interfaces.IVolunteerRepository,
	requests interfaces.IServiceRequestRepository,
	hasher interfaces.IPinHasher,
) *RecordUseCase {
	return &RecordUseCase{
		people:     people,
		volunteers: volunteers,
		requests:   requests,
		hasher:     hasher,
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
	}
}

func (u *RecordUseCase) hashPin(secretPin string) (string, error) {
	if !pin.Valid(secretPin) {
		return "", ErrInvalidPin
	}
	return u.hasher.Hash(secretPin)
}

func (u *RecordUseCase) CreatePerson(ctx context.Context, session *RegistrySession, p entities.Person, secretPin string) (entities.Person, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return entities.Person{}, ErrInvalidRecord
	}
	switch p.Status {
	case "":
		p.Status = entities.PersonStatusMissing
	case entities.PersonStatusSafe, entities.PersonStatusMissing:
	default:
		return entities.Person{}, ErrInvalidRecord
	}
	hash, err := u.hashPin(secretPin)
	if err != nil {
		return entities.Person{}, err
	}

	now := u.now()
	p.ID = u.newID()
	p.SecretPinHash = hash
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Version = 0

	created, err := u.people.Create(ctx, p)
	if err != nil {
		log.Printf("[person][usecase] failed creating person err=%v", err)
		return entities.Person{}, err
	}
	log.Printf("[person][usecase] person created person_id=%s status=%s", created.ID, created.Status)
	session.remember(ctx, "person", created.ID, entities.RegistryRoleOwner)
	return created, nil
}

func (u *RecordUseCase) ListPeople(ctx context.Context) ([]entities.Person, error) {
	return u.people.List(ctx)
}

func (u *RecordUseCase) CreateVolunteer(ctx context.Context, session *RegistrySession, v entities.Volunteer, secretPin string) (entities.Volunteer, error) {
	v.Name = strings.TrimSpace(v.Name)
	v.ContactNumber = strings.TrimSpace(v.ContactNumber)
	if v.Name == "" || v.ContactNumber == "" {
		return entities.Volunteer{}, ErrInvalidRecord
	}
	switch v.Status {
	case "":
		v.Status = entities.VolunteerStatusAvailable
	case entities.VolunteerStatusAvailable, entities.VolunteerStatusBusy:
	default:
		return entities.Volunteer{}, ErrInvalidRecord
	}
	if v.Skills == nil {
		v.Skills = []string{}
	}
	hash, err := u.hashPin(secretPin)
	if err != nil {
		return entities.Volunteer{}, err
	}

	now := u.now()
	v.ID = u.newID()
	v.SecretPinHash = hash
	v.CreatedAt = now
	v.UpdatedAt = now
	v.Version = 0

	created, err := u.volunteers.Create(ctx, v)
	if err != nil {
		log.Printf("[volunteer][usecase] failed creating volunteer err=%v", err)
		return entities.Volunteer{}, err
	}
	log.Printf("[volunteer][usecase] volunteer created volunteer_id=%s", created.ID)
	session.remember(ctx, "volunteer", created.ID, entities.RegistryRoleOwner)
	return created, nil
}

func (u *RecordUseCase) ListVolunteers(ctx context.Context) ([]entities.Volunteer, error) {
	return u.volunteers.List(ctx)
}

func (u *RecordUseCase) CreateServiceRequest(ctx context.Context, session *RegistrySession, r entities.ServiceRequest, secretPin string) (entities.ServiceRequest, error) {
	switch r.Category {
	case entities.ServiceCategoryRescue, entities.ServiceCategoryMedical, entities.ServiceCategoryEvacuation,
		entities.ServiceCategoryCleanup, entities.ServiceCategoryOther:
	default:
		return entities.ServiceRequest{}, ErrInvalidRecord
	}
	r.Contact.Phone = strings.TrimSpace(r.Contact.Phone)
	if r.Contact.Phone == "" {
		return entities.ServiceRequest{}, ErrInvalidRecord
	}
	switch r.Status {
	case "":
		r.Status = entities.ServiceRequestStatusPending
	case entities.ServiceRequestStatusPending, entities.ServiceRequestStatusInProgress, entities.ServiceRequestStatusCompleted:
	default:
		return entities.ServiceRequest{}, ErrInvalidRecord
	}
	hash, err := u.hashPin(secretPin)
	if err != nil {
		return entities.ServiceRequest{}, err
	}

	now := u.now()
	r.ID = u.newID()
	r.SecretPinHash = hash
	r.CreatedAt = now
	r.UpdatedAt = now
	r.Version = 0

	created, err := u.requests.Create(ctx, r)
	if err != nil {
		log.Printf("[service-request][usecase] failed creating request err=%v", err)
		return entities.ServiceRequest{}, err
	}
	log.Printf("[service-request][usecase] request created request_id=%s category=%s", created.ID, created.Category)
	session.remember(ctx, "service-request", created.ID, entities.RegistryRoleOwner)
	return created, nil
}

func (u *RecordUseCase) ListServiceRequests(ctx context.Context) ([]entities.ServiceRequest, error) {
	return u.requests.List(ctx)
}
