package entities

import "time"

// NeedStatus is the presentation status of a need.
//
// It is never persisted. Status() derives it from the pledge entries, the target
// quantity and the closed flag, so stored state cannot diverge from it.
type NeedStatus string

const (
	NeedStatusRequested        NeedStatus = "pending"
	NeedStatusPartiallyPledged NeedStatus = "partially_pledged"
	NeedStatusFullyPledged     NeedStatus = "fully_pledged"
	NeedStatusReceived         NeedStatus = "completed"
)

type NeedType string

const (
	NeedTypeGoods   NeedType = "GOODS"
	NeedTypeService NeedType = "SERVICE"
)

type UrgencyLevel string

const (
	UrgencyLow    UrgencyLevel = "LOW"
	UrgencyMedium UrgencyLevel = "MEDIUM"
	UrgencyHigh   UrgencyLevel = "HIGH"
)

type Coordinates struct {
	Lat float64 `json:"lat" dynamodbav:"lat"`
	Lng float64 `json:"lng" dynamodbav:"lng"`
}

type Demographics struct {
	Men      int `json:"men" dynamodbav:"men"`
	Women    int `json:"women" dynamodbav:"women"`
	Children int `json:"children" dynamodbav:"children"`
}

// Pledge is one donor commitment against a need.
//
// PinHash is the bcrypt hash of the donor's PIN and lets that donor manage the entry later.
type Pledge struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	PinHash   string    `json:"-"`
	PledgedAt time.Time `json:"pledged_at"`
}

// Need is a request for material aid.
//
// Storage model (DynamoDB):
//   - PK: id
//   - version: optimistic-concurrency counter, bumped on every write
//
// Lifecycle:
//   - created with no pledges (pending)
//   - Pledge appends entries, Receive closes it, Reopen clears entries and the closed flag
type Need struct {
	ID            string        `json:"id"`
	Type          NeedType      `json:"type"`
	Item          string        `json:"item"`
	Category      string        `json:"category"`
	Urgency       UrgencyLevel  `json:"urgency"`
	AffectedCount int           `json:"affected_count"`
	Demographics  *Demographics `json:"demographics,omitempty"`
	Quantity      int           `json:"quantity"`
	Unit          string        `json:"unit,omitempty"`
	District      string        `json:"district"`
	Location      string        `json:"location"`
	Coordinates   *Coordinates  `json:"coordinates,omitempty"`
	ContactName   string        `json:"contact_name"`
	ContactNumber string        `json:"contact_number"`
	Description   string        `json:"description,omitempty"`
	PeopleNeeded  int           `json:"people_needed,omitempty"`

	Pledges        []Pledge `json:"pledges"`
	ReceivedAmount int      `json:"received_amount"`
	Closed         bool     `json:"closed"`

	SecretPinHash string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int64     `json:"-"`
}

// DeriveStatus maps a pledged amount and a target quantity to a status.
// RECEIVED is never derived; only an explicit close reaches it.
func DeriveStatus(pledged, quantity int) NeedStatus {
	switch {
	case pledged <= 0:
		return NeedStatusRequested
	case pledged < quantity:
		return NeedStatusPartiallyPledged
	default:
		return NeedStatusFullyPledged
	}
}

func (n Need) PledgedAmount() int {
	total := 0
	for _, p := range n.Pledges {
		total += p.Amount
	}
	return total
}

func (n Need) Status() NeedStatus {
	if n.Closed {
		return NeedStatusReceived
	}
	return DeriveStatus(n.PledgedAmount(), n.Quantity)
}

// LatestPledge returns the most recently appended pledge entry.
func (n Need) LatestPledge() (Pledge, bool) {
	if len(n.Pledges) == 0 {
		return Pledge{}, false
	}
	return n.Pledges[len(n.Pledges)-1], true
}

// DonorPinHash is the PIN hash of the most recent pledger, empty when nobody pledged.
func (n Need) DonorPinHash() string {
	p, ok := n.LatestPledge()
	if !ok {
		return ""
	}
	return p.PinHash
}

// PledgedAt is the time of the most recent pledge, nil when nobody pledged.
func (n Need) PledgedAt() *time.Time {
	p, ok := n.LatestPledge()
	if !ok {
		return nil
	}
	t := p.PledgedAt
	return &t
}

// IsPubliclyVisible reports whether anyone may see the need in listings.
// Fully pledged and received needs are shown only to their owner and pledgers.
func (n Need) IsPubliclyVisible() bool {
	s := n.Status()
	return s == NeedStatusRequested || s == NeedStatusPartiallyPledged
}
