package entities

import "time"

// Collection names of the PIN-protected record types.
const (
	CollectionNeeds           = "needs"
	CollectionPeople          = "people"
	CollectionVolunteers      = "volunteers"
	CollectionServiceRequests = "service_requests"
)

// RecordLock is the authorization view of a stored record: enough to check a PIN
// and to make the following write conditional on nothing having changed.
type RecordLock struct {
	ID            string
	SecretPinHash string
	Version       int64
}

// Patch is a partial update keyed by stored attribute name.
type Patch map[string]any

// Without returns a copy of the patch minus the given keys.
func (p Patch) Without(keys ...string) Patch {
	out := make(Patch, len(p))
	for k, v := range p {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}

type RegistryRole string

const (
	RegistryRoleOwner   RegistryRole = "owner"
	RegistryRolePledger RegistryRole = "pledger"
)

func (r RegistryRole) Valid() bool {
	return r == RegistryRoleOwner || r == RegistryRolePledger
}

// RegistryEntry is a client-side "I created / I pledged to" marker.
// It only drives what a client is shown; it never grants authority.
type RegistryEntry struct {
	ClientID   string       `json:"client_id"`
	RecordID   string       `json:"record_id"`
	Role       RegistryRole `json:"role"`
	RecordedAt time.Time    `json:"recorded_at"`
}

// NeedEvent is published after every successful need lifecycle mutation.
type NeedEvent struct {
	Type           string     `json:"type"`
	NeedID         string     `json:"need_id"`
	Status         NeedStatus `json:"status"`
	Quantity       int        `json:"quantity"`
	PledgedAmount  int        `json:"pledged_amount"`
	ReceivedAmount int        `json:"received_amount"`
	OccurredAt     time.Time  `json:"occurred_at"`
}

func NewNeedEvent(eventType string, n Need, at time.Time) NeedEvent {
	return NeedEvent{
		Type:           eventType,
		NeedID:         n.ID,
		Status:         n.Status(),
		Quantity:       n.Quantity,
		PledgedAmount:  n.PledgedAmount(),
		ReceivedAmount: n.ReceivedAmount,
		OccurredAt:     at,
	}
}

// RecordEvent is published when a PIN-protected record is updated or removed.
type RecordEvent struct {
	Type       string    `json:"type"`
	Collection string    `json:"collection"`
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
