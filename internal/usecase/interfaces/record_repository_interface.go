package interfaces

import (
	"athwela/internal/domain/entities"
	"context"
)

// IPersonRepository abstracts DynamoDB persistence for Person.

type IPersonRepository interface {
	Create(ctx context.Context, p entities.Person) (entities.Person, error)
	GetByID(ctx context.Context, id string) (entities.Person, error)
	List(ctx context.Context) ([]entities.Person, error)
}

// IVolunteerRepository abstracts DynamoDB persistence for Volunteer.

type IVolunteerRepository interface {
	Create(ctx context.Context, v entities.Volunteer) (entities.Volunteer, error)
	GetByID(ctx context.Context, id string) (entities.Volunteer, error)
	List(ctx context.Context) ([]entities.Volunteer, error)
}

// IServiceRequestRepository abstracts DynamoDB persistence for ServiceRequest.

type IServiceRequestRepository interface {
	Create(ctx context.Context, r entities.ServiceRequest) (entities.ServiceRequest, error)
	GetByID(ctx context.Context, id string) (entities.ServiceRequest, error)
	List(ctx context.Context) ([]entities.ServiceRequest, error)
}
