package entities

import "time"

// CollectionEvents holds volunteer events. Events are created by moderators and carry
// no PIN, so the guard does not serve them.
const CollectionEvents = "events"

type VolunteerEventType string

const (
	VolunteerEventCleanup      VolunteerEventType = "CLEANUP"
	VolunteerEventDistribution VolunteerEventType = "DISTRIBUTION"
	VolunteerEventMedical      VolunteerEventType = "MEDICAL"
	VolunteerEventRescue       VolunteerEventType = "RESCUE"
)

func (t VolunteerEventType) Valid() bool {
	switch t {
	case VolunteerEventCleanup, VolunteerEventDistribution, VolunteerEventMedical, VolunteerEventRescue:
		return true
	}
	return false
}

// VolunteerEvent is a scheduled cleanup, distribution, medical or rescue drive that
// volunteers sign up for. RegisteredVolunteers never exceeds RequiredVolunteers.
type VolunteerEvent struct {
	ID                   string             `json:"id"`
	Title                string             `json:"title"`
	Description          string             `json:"description,omitempty"`
	Type                 VolunteerEventType `json:"type"`
	District             string             `json:"district"`
	Location             string             `json:"location"`
	Coordinates          *Coordinates       `json:"coordinates,omitempty"`
	Date                 string             `json:"date"`
	Time                 string             `json:"time,omitempty"`
	RequiredVolunteers   int                `json:"required_volunteers"`
	RegisteredVolunteers int                `json:"registered_volunteers"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Version   int64     `json:"-"`
}

func (e VolunteerEvent) Full() bool {
	return e.RegisteredVolunteers >= e.RequiredVolunteers
}

func (e VolunteerEvent) OpenSlots() int {
	if e.Full() {
		return 0
	}
	return e.RequiredVolunteers - e.RegisteredVolunteers
}

// VolunteerEventMessage is the body published for event lifecycle changes.
type VolunteerEventMessage struct {
	Type                 string    `json:"type"`
	EventID              string    `json:"event_id"`
	RequiredVolunteers   int       `json:"required_volunteers"`
	RegisteredVolunteers int       `json:"registered_volunteers"`
	OccurredAt           time.Time `json:"occurred_at"`
}

func NewVolunteerEventMessage(routingKey string, e VolunteerEvent, at time.Time) VolunteerEventMessage {
	return VolunteerEventMessage{
		Type:                 routingKey,
		EventID:              e.ID,
		RequiredVolunteers:   e.RequiredVolunteers,
		RegisteredVolunteers: e.RegisteredVolunteers,
		OccurredAt:           at,
	}
}
