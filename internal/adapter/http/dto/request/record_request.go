package request

import (
	"strings"

	"athwela/internal/domain/entities"
)

type CreatePersonRequest struct {
	Name                string                `json:"name" binding:"required"`
	NIC                 string                `json:"nic"`
	District            string                `json:"district"`
	Status              string                `json:"status"`
	LastSeenLocation    string                `json:"last_seen_location"`
	LastSeenDate        string                `json:"last_seen_date"`
	Age                 int                   `json:"age"`
	Gender              string                `json:"gender"`
	PhysicalDescription string                `json:"physical_description"`
	Coordinates         *entities.Coordinates `json:"coordinates"`
	ContactNumber       string                `json:"contact_number"`
	ReporterName        string                `json:"reporter_name"`
	ReporterContact     string                `json:"reporter_contact"`
	Message             string                `json:"message"`
	SecretPin           string                `json:"secret_pin"`
}

func (r CreatePersonRequest) ToEntity() entities.Person {
	return entities.Person{
		Name:                strings.TrimSpace(r.Name),
		NIC:                 strings.TrimSpace(r.NIC),
		District:            strings.TrimSpace(r.District),
		Status:              entities.PersonStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
		LastSeenLocation:    strings.TrimSpace(r.LastSeenLocation),
		LastSeenDate:        strings.TrimSpace(r.LastSeenDate),
		Age:                 r.Age,
		Gender:              strings.TrimSpace(r.Gender),
		PhysicalDescription: strings.TrimSpace(r.PhysicalDescription),
		Coordinates:         r.Coordinates,
		ContactNumber:       strings.TrimSpace(r.ContactNumber),
		ReporterName:        strings.TrimSpace(r.ReporterName),
		ReporterContact:     strings.TrimSpace(r.ReporterContact),
		Message:             strings.TrimSpace(r.Message),
	}
}

type CreateVolunteerRequest struct {
	Name          string                `json:"name" binding:"required"`
	ContactNumber string                `json:"contact_number" binding:"required"`
	District      string                `json:"district"`
	Location      string                `json:"location"`
	Coordinates   *entities.Coordinates `json:"coordinates"`
	Skills        []string              `json:"skills"`
	CoverageArea  string                `json:"coverage_area"`
	Status        string                `json:"status"`
	SecretPin     string                `json:"secret_pin"`
}

func (r CreateVolunteerRequest) ToEntity() entities.Volunteer {
	skills := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		if s = strings.TrimSpace(s); s != "" {
			skills = append(skills, s)
		}
	}
	return entities.Volunteer{
		Name:          strings.TrimSpace(r.Name),
		ContactNumber: strings.TrimSpace(r.ContactNumber),
		District:      strings.TrimSpace(r.District),
		Location:      strings.TrimSpace(r.Location),
		Coordinates:   r.Coordinates,
		Skills:        skills,
		CoverageArea:  strings.TrimSpace(r.CoverageArea),
		Status:        entities.VolunteerStatus(strings.ToUpper(strings.TrimSpace(r.Status))),
	}
}

type CreateServiceRequestRequest struct {
	Category  string                   `json:"category" binding:"required"`
	Details   map[string]any           `json:"details"`
	Location  entities.ServiceLocation `json:"location"`
	Contact   entities.ServiceContact  `json:"contact"`
	SecretPin string                   `json:"secret_pin"`
}

func (r CreateServiceRequestRequest) ToEntity() entities.ServiceRequest {
	loc := r.Location
	loc.District = strings.TrimSpace(loc.District)
	loc.Address = strings.TrimSpace(loc.Address)
	return entities.ServiceRequest{
		Category: entities.ServiceCategory(strings.ToUpper(strings.TrimSpace(r.Category))),
		Details:  r.Details,
		Location: loc,
		Contact: entities.ServiceContact{
			Name:  strings.TrimSpace(r.Contact.Name),
			Phone: strings.TrimSpace(r.Contact.Phone),
		},
	}
}
