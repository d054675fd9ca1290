package request

import (
	"strings"

	"athwela/internal/domain/entities"
)

type CreateEventRequest struct {
	Title              string                `json:"title" binding:"required"`
	Description        string                `json:"description"`
	Type               string                `json:"type" binding:"required"`
	District           string                `json:"district"`
	Location           string                `json:"location"`
	Coordinates        *entities.Coordinates `json:"coordinates"`
	Date               string                `json:"date" binding:"required"`
	Time               string                `json:"time"`
	RequiredVolunteers int                   `json:"required_volunteers" binding:"required,gt=0"`
}

func (r CreateEventRequest) ToEntity() entities.VolunteerEvent {
	return entities.VolunteerEvent{
		Title:              strings.TrimSpace(r.Title),
		Description:        strings.TrimSpace(r.Description),
		Type:               entities.VolunteerEventType(strings.ToUpper(strings.TrimSpace(r.Type))),
		District:           strings.TrimSpace(r.District),
		Location:           strings.TrimSpace(r.Location),
		Coordinates:        r.Coordinates,
		Date:               strings.TrimSpace(r.Date),
		Time:               strings.TrimSpace(r.Time),
		RequiredVolunteers: r.RequiredVolunteers,
	}
}
