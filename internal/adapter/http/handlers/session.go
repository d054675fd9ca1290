package handlers

import (
	"athwela/internal/domain/entities"
	"athwela/internal/usecase"

	"github.com/gin-gonic/gin"
)

// HeaderClientID identifies the browser/device whose local registry is used.
// It only scopes what the client is shown and never authorizes anything.
const HeaderClientID = "X-Client-ID"

func sessionFrom(c *gin.Context, registry usecase.IRegistryUseCase) *usecase.RegistrySession {
	if registry == nil {
		return nil
	}
	return registry.Session(c.GetHeader(HeaderClientID))
}

// collectionFromPath maps URL segments onto stored collection names.
func collectionFromPath(segment string) string {
	switch segment {
	case "needs":
		return entities.CollectionNeeds
	case "people":
		return entities.CollectionPeople
	case "volunteers":
		return entities.CollectionVolunteers
	case "service-requests", "service_requests":
		return entities.CollectionServiceRequests
	default:
		return segment
	}
}
