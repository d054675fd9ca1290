package request

import (
	"strings"

	"athwela/internal/domain/entities"
)

// CreateNeedRequest is the payload for posting a need. SecretPin becomes the owner PIN
// and is only ever stored hashed.
type CreateNeedRequest struct {
	Type          string                 `json:"type"`
	Item          string                 `json:"item" binding:"required"`
	Category      string                 `json:"category"`
	Urgency       string                 `json:"urgency"`
	AffectedCount int                    `json:"affected_count"`
	Demographics  *entities.Demographics `json:"demographics"`
	Quantity      int                    `json:"quantity"`
	Unit          string                 `json:"unit"`
	District      string                 `json:"district"`
	Location      string                 `json:"location"`
	Coordinates   *entities.Coordinates  `json:"coordinates"`
	ContactName   string                 `json:"contact_name"`
	ContactNumber string                 `json:"contact_number"`
	Description   string                 `json:"description"`
	PeopleNeeded  int                    `json:"people_needed"`
	SecretPin     string                 `json:"secret_pin"`
}

func (r CreateNeedRequest) ToEntity() entities.Need {
	return entities.Need{
		Type:          entities.NeedType(strings.ToUpper(strings.TrimSpace(r.Type))),
		Item:          strings.TrimSpace(r.Item),
		Category:      strings.TrimSpace(r.Category),
		Urgency:       entities.UrgencyLevel(strings.ToUpper(strings.TrimSpace(r.Urgency))),
		AffectedCount: r.AffectedCount,
		Demographics:  r.Demographics,
		Quantity:      r.Quantity,
		Unit:          strings.TrimSpace(r.Unit),
		District:      strings.TrimSpace(r.District),
		Location:      strings.TrimSpace(r.Location),
		Coordinates:   r.Coordinates,
		ContactName:   strings.TrimSpace(r.ContactName),
		ContactNumber: strings.TrimSpace(r.ContactNumber),
		Description:   strings.TrimSpace(r.Description),
		PeopleNeeded:  r.PeopleNeeded,
	}
}

// PledgeRequest commits Amount units. Pin is the donor's own PIN for managing the pledge.
type PledgeRequest struct {
	Amount int    `json:"amount"`
	Pin    string `json:"pin"`
}

// ReceiveRequest records a delivery; Pin is the owner PIN.
type ReceiveRequest struct {
	Amount int    `json:"amount"`
	Pin    string `json:"pin"`
}

// PinRequest carries only a PIN (reopen, cancel pledge, delete).
type PinRequest struct {
	Pin string `json:"pin"`
}

// UpdateRecordRequest is a partial update gated by the record's PIN.
type UpdateRecordRequest struct {
	Pin    string         `json:"pin"`
	Fields map[string]any `json:"fields" binding:"required"`
}
