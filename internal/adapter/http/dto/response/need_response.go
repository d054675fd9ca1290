package response

import (
	"time"

	"athwela/internal/domain/entities"
)

type PledgeResponse struct {
	ID        string    `json:"id"`
	Amount    int       `json:"amount"`
	PledgedAt time.Time `json:"pledged_at"`
}

// NeedResponse is the public view of a need. Derived fields are computed here so the
// client never has to re-sum pledges; PIN hashes are never included.
type NeedResponse struct {
	ID             string                 `json:"id"`
	Type           string                 `json:"type"`
	Item           string                 `json:"item"`
	Category       string                 `json:"category"`
	Urgency        string                 `json:"urgency"`
	AffectedCount  int                    `json:"affected_count"`
	Demographics   *entities.Demographics `json:"demographics,omitempty"`
	Quantity       int                    `json:"quantity"`
	Unit           string                 `json:"unit,omitempty"`
	District       string                 `json:"district"`
	Location       string                 `json:"location"`
	Coordinates    *entities.Coordinates  `json:"coordinates,omitempty"`
	ContactName    string                 `json:"contact_name"`
	ContactNumber  string                 `json:"contact_number"`
	Description    string                 `json:"description,omitempty"`
	PeopleNeeded   int                    `json:"people_needed,omitempty"`
	Status         string                 `json:"status"`
	PledgedAmount  int                    `json:"pledged_amount"`
	ReceivedAmount int                    `json:"received_amount"`
	Pledges        []PledgeResponse       `json:"pledges"`
	PledgedAt      *time.Time             `json:"pledged_at,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

func FromNeed(n entities.Need) NeedResponse {
	pledges := make([]PledgeResponse, 0, len(n.Pledges))
	for _, p := range n.Pledges {
		pledges = append(pledges, PledgeResponse{ID: p.ID, Amount: p.Amount, PledgedAt: p.PledgedAt})
	}
	return NeedResponse{
		ID:             n.ID,
		Type:           string(n.Type),
		Item:           n.Item,
		Category:       n.Category,
		Urgency:        string(n.Urgency),
		AffectedCount:  n.AffectedCount,
		Demographics:   n.Demographics,
		Quantity:       n.Quantity,
		Unit:           n.Unit,
		District:       n.District,
		Location:       n.Location,
		Coordinates:    n.Coordinates,
		ContactName:    n.ContactName,
		ContactNumber:  n.ContactNumber,
		Description:    n.Description,
		PeopleNeeded:   n.PeopleNeeded,
		Status:         string(n.Status()),
		PledgedAmount:  n.PledgedAmount(),
		ReceivedAmount: n.ReceivedAmount,
		Pledges:        pledges,
		PledgedAt:      n.PledgedAt(),
		CreatedAt:      n.CreatedAt,
		UpdatedAt:      n.UpdatedAt,
	}
}

func FromNeeds(needs []entities.Need) []NeedResponse {
	out := make([]NeedResponse, 0, len(needs))
	for _, n := range needs {
		out = append(out, FromNeed(n))
	}
	return out
}

// PledgeResultResponse is returned by a pledge so the donor can keep the entry id
// needed to cancel it later.
type PledgeResultResponse struct {
	PledgeID string       `json:"pledge_id"`
	Need     NeedResponse `json:"need"`
}
