package repository

import (
	"context"
	"sort"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
)

const defaultVolunteerEventsTableName = "volunteer_events"

type volunteerEventItem struct {
	ID                   string                `dynamodbav:"id"`
	Title                string                `dynamodbav:"title"`
	Description          string                `dynamodbav:"description,omitempty"`
	Type                 string                `dynamodbav:"type"`
	District             string                `dynamodbav:"district"`
	Location             string                `dynamodbav:"location"`
	Coordinates          *entities.Coordinates `dynamodbav:"coordinates,omitempty"`
	Date                 string                `dynamodbav:"date"`
	Time                 string                `dynamodbav:"time,omitempty"`
	RequiredVolunteers   int                   `dynamodbav:"required_volunteers"`
	RegisteredVolunteers int                   `dynamodbav:"registered_volunteers"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
	Version   int64  `dynamodbav:"version"`
}

// VolunteerEventDynamoRepository persists volunteer events in DynamoDB (PK: id).
//
// The registration counter lives on the item and only moves through Transact, so
// concurrent sign-ups are serialized by the version condition. The secured-record
// view lets the admin override delete events like any other record.

type VolunteerEventDynamoRepository struct {
	versionedTable
}

var (
	_ interfaces.IVolunteerEventRepository = (*VolunteerEventDynamoRepository)(nil)
	_ interfaces.ISecuredRecordStore       = (*VolunteerEventDynamoRepository)(nil)
)

func NewVolunteerEventDynamoRepository(ddb DynamoAPI, tableName string) *VolunteerEventDynamoRepository {
	return &VolunteerEventDynamoRepository{versionedTable{
		ddb:        ddb,
		tableName:  tableNameOrDefault(tableName, defaultVolunteerEventsTableName),
		collection: entities.CollectionEvents,
	}}
}

func (r *VolunteerEventDynamoRepository) Create(ctx context.Context, e entities.VolunteerEvent) (entities.VolunteerEvent, error) {
	if e.Version == 0 {
		e.Version = 1
	}
	if err := r.putNew(ctx, toVolunteerEventItem(e)); err != nil {
		return entities.VolunteerEvent{}, err
	}
	return e, nil
}

func (r *VolunteerEventDynamoRepository) GetByID(ctx context.Context, id string) (entities.VolunteerEvent, error) {
	raw, err := r.get(ctx, id)
	if err != nil {
		return entities.VolunteerEvent{}, err
	}
	if len(raw) == 0 {
		return entities.VolunteerEvent{}, nil
	}
	var it volunteerEventItem
	if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
		return entities.VolunteerEvent{}, err
	}
	return fromVolunteerEventItem(it), nil
}

// List returns events in calendar order, soonest first.
func (r *VolunteerEventDynamoRepository) List(ctx context.Context) ([]entities.VolunteerEvent, error) {
	raw, err := r.scan(ctx)
	if err != nil {
		return nil, err
	}
	events := make([]entities.VolunteerEvent, 0, len(raw))
	for _, av := range raw {
		var it volunteerEventItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		events = append(events, fromVolunteerEventItem(it))
	}
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Date != events[j].Date {
			return events[i].Date < events[j].Date
		}
		return events[i].Time < events[j].Time
	})
	return events, nil
}

func (r *VolunteerEventDynamoRepository) Transact(
	ctx context.Context,
	id string,
	fn func(current entities.VolunteerEvent) (entities.VolunteerEvent, error),
) (entities.VolunteerEvent, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.VolunteerEvent{}, err
	}
	if current.ID == "" {
		return entities.VolunteerEvent{}, nil
	}

	next, err := fn(current)
	if err != nil {
		return entities.VolunteerEvent{}, err
	}
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	next.Version = current.Version + 1

	if err := r.putVersioned(ctx, toVolunteerEventItem(next), current.Version); err != nil {
		return entities.VolunteerEvent{}, err
	}
	return next, nil
}

func toVolunteerEventItem(e entities.VolunteerEvent) volunteerEventItem {
	return volunteerEventItem{
		ID:                   e.ID,
		Title:                e.Title,
		Description:          e.Description,
		Type:                 string(e.Type),
		District:             e.District,
		Location:             e.Location,
		Coordinates:          e.Coordinates,
		Date:                 e.Date,
		Time:                 e.Time,
		RequiredVolunteers:   e.RequiredVolunteers,
		RegisteredVolunteers: e.RegisteredVolunteers,
		CreatedAt:            formatTime(e.CreatedAt),
		UpdatedAt:            formatTime(e.UpdatedAt),
		Version:              e.Version,
	}
}

func fromVolunteerEventItem(it volunteerEventItem) entities.VolunteerEvent {
	return entities.VolunteerEvent{
		ID:                   it.ID,
		Title:                it.Title,
		Description:          it.Description,
		Type:                 entities.VolunteerEventType(it.Type),
		District:             it.District,
		Location:             it.Location,
		Coordinates:          it.Coordinates,
		Date:                 it.Date,
		Time:                 it.Time,
		RequiredVolunteers:   it.RequiredVolunteers,
		RegisteredVolunteers: it.RegisteredVolunteers,
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
		Version:              it.Version,
	}
}
