package entities

import "time"

type PersonStatus string

const (
	PersonStatusSafe    PersonStatus = "SAFE"
	PersonStatusMissing PersonStatus = "MISSING"
)

// Person is a missing-person or "I am safe" report.
type Person struct {
	ID                  string       `json:"id"`
	Name                string       `json:"name"`
	NIC                 string       `json:"nic,omitempty"`
	District            string       `json:"district"`
	Status              PersonStatus `json:"status"`
	LastSeenLocation    string       `json:"last_seen_location"`
	LastSeenDate        string       `json:"last_seen_date,omitempty"`
	Age                 int          `json:"age,omitempty"`
	Gender              string       `json:"gender,omitempty"`
	PhysicalDescription string       `json:"physical_description,omitempty"`
	Coordinates         *Coordinates `json:"coordinates,omitempty"`
	ContactNumber       string       `json:"contact_number,omitempty"`
	ReporterName        string       `json:"reporter_name,omitempty"`
	ReporterContact     string       `json:"reporter_contact,omitempty"`
	Message             string       `json:"message,omitempty"`

	SecretPinHash string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int64     `json:"-"`
}

type VolunteerStatus string

const (
	VolunteerStatusAvailable VolunteerStatus = "AVAILABLE"
	VolunteerStatusBusy      VolunteerStatus = "BUSY"
)

// Volunteer is a volunteer registration.
type Volunteer struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	ContactNumber string          `json:"contact_number"`
	District      string          `json:"district"`
	Location      string          `json:"location"`
	Coordinates   *Coordinates    `json:"coordinates,omitempty"`
	Skills        []string        `json:"skills"`
	CoverageArea  string          `json:"coverage_area"`
	Status        VolunteerStatus `json:"status"`

	SecretPinHash string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int64     `json:"-"`
}

type ServiceCategory string

const (
	ServiceCategoryRescue     ServiceCategory = "RESCUE"
	ServiceCategoryMedical    ServiceCategory = "MEDICAL"
	ServiceCategoryEvacuation ServiceCategory = "EVACUATION"
	ServiceCategoryCleanup    ServiceCategory = "CLEANUP"
	ServiceCategoryOther      ServiceCategory = "OTHER"
)

type ServiceRequestStatus string

const (
	ServiceRequestStatusPending    ServiceRequestStatus = "PENDING"
	ServiceRequestStatusInProgress ServiceRequestStatus = "IN_PROGRESS"
	ServiceRequestStatusCompleted  ServiceRequestStatus = "COMPLETED"
)

type ServiceLocation struct {
	Coordinates Coordinates `json:"coordinates" dynamodbav:"coordinates"`
	District    string      `json:"district" dynamodbav:"district"`
	Address     string      `json:"address,omitempty" dynamodbav:"address,omitempty"`
}

type ServiceContact struct {
	Name  string `json:"name" dynamodbav:"name"`
	Phone string `json:"phone" dynamodbav:"phone"`
}

// ServiceRequest is a rescue/medical/evacuation/cleanup request.
//
// Details is free-form per category (water level, headcount, condition...).
type ServiceRequest struct {
	ID       string               `json:"id"`
	Category ServiceCategory      `json:"category"`
	Details  map[string]any       `json:"details,omitempty"`
	Location ServiceLocation      `json:"location"`
	Contact  ServiceContact       `json:"contact"`
	Status   ServiceRequestStatus `json:"status"`

	SecretPinHash string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int64     `json:"-"`
}
