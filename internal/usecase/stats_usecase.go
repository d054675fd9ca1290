package usecase

import (
	"context"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase/interfaces"
)

// Stats is the dashboard summary.
type Stats struct {
	TotalNeeds       int `json:"total_needs"`
	FulfilledNeeds   int `json:"fulfilled_needs"`
	PeopleSafe       int `json:"people_safe"`
	PeopleMissing    int `json:"people_missing"`
	Volunteers       int `json:"volunteers"`
	OpenServiceCalls int `json:"open_service_requests"`
}

type IStatsUseCase interface {
	Get(ctx context.Context) (Stats, error)
}

type StatsUseCase struct {
	needs      interfaces.INeedRepository
	people     interfaces.IPersonRepository
	volunteers interfaces.IVolunteerRepository
	requests   interfaces.IServiceRequestRepository
}

var _ IStatsUseCase = (*StatsUseCase)(nil)

func NewStatsUseCase(
	needs interfaces.INeedRepository,
	people interfaces.IPersonRepository,
	volunteers interfaces.IVolunteerRepository,
	requests interfaces.IServiceRequestRepository,
) *StatsUseCase {
	return &StatsUseCase{needs: needs, people: people, volunteers: volunteers, requests: requests}
}

func (u *StatsUseCase) Get(ctx context.Context) (Stats, error) {
	var s Stats

	needs, err := u.needs.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	s.TotalNeeds = len(needs)
	for _, n := range needs {
		if n.Status() == entities.NeedStatusReceived {
			s.FulfilledNeeds++
		}
	}

	people, err := u.people.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	for _, p := range people {
		switch p.Status {
		case entities.PersonStatusSafe:
			s.PeopleSafe++
		case entities.PersonStatusMissing:
			s.PeopleMissing++
		}
	}

	volunteers, err := u.volunteers.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	s.Volunteers = len(volunteers)

	requests, err := u.requests.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	for _, r := range requests {
		if r.Status != entities.ServiceRequestStatusCompleted {
			s.OpenServiceCalls++
		}
	}
	return s, nil
}
