package routes

import (
	"athwela/internal/adapter/http/handlers"
	"athwela/internal/adapter/http/middleware"
	"athwela/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathNeeds           = "/needs"
	PathPeople          = "/people"
	PathVolunteers      = "/volunteers"
	PathServiceRequests = "/service-requests"
	PathRegistry        = "/registry"
	PathStats           = "/stats"
	PathEvents          = "/events"
	PathAdmin           = "/admin"
)

func addNeedRoutes(rg *gin.RouterGroup, needHandler *handlers.NeedHandler, guardHandler *handlers.GuardHandler) {
	needs := rg.Group(PathNeeds)
	{
		needs.POST("", needHandler.CreateNeed)
		needs.GET("", needHandler.ListNeeds)
		needs.GET("/:id", needHandler.GetNeed)
		needs.PATCH("/:id", guardHandler.Update(entities.CollectionNeeds))
		needs.DELETE("/:id", guardHandler.Delete(entities.CollectionNeeds))
		needs.POST("/:id/pledges", needHandler.Pledge)
		needs.DELETE("/:id/pledges/:pledge_id", needHandler.CancelPledge)
		needs.POST("/:id/receipts", needHandler.Receive)
		needs.POST("/:id/reopen", needHandler.Reopen)
	}
}

func addRecordRoutes(rg *gin.RouterGroup, recordHandler *handlers.RecordHandler, guardHandler *handlers.GuardHandler) {
	people := rg.Group(PathPeople)
	{
		people.POST("", recordHandler.CreatePerson)
		people.GET("", recordHandler.ListPeople)
		people.PATCH("/:id", guardHandler.Update(entities.CollectionPeople))
		people.DELETE("/:id", guardHandler.Delete(entities.CollectionPeople))
	}

	volunteers := rg.Group(PathVolunteers)
	{
		volunteers.POST("", recordHandler.CreateVolunteer)
		volunteers.GET("", recordHandler.ListVolunteers)
		volunteers.PATCH("/:id", guardHandler.Update(entities.CollectionVolunteers))
		volunteers.DELETE("/:id", guardHandler.Delete(entities.CollectionVolunteers))
	}

	requests := rg.Group(PathServiceRequests)
	{
		requests.POST("", recordHandler.CreateServiceRequest)
		requests.GET("", recordHandler.ListServiceRequests)
		requests.PATCH("/:id", guardHandler.Update(entities.CollectionServiceRequests))
		requests.DELETE("/:id", guardHandler.Delete(entities.CollectionServiceRequests))
	}
}

func addRegistryRoutes(rg *gin.RouterGroup, registryHandler *handlers.RegistryHandler, statsHandler *handlers.StatsHandler) {
	rg.GET(PathRegistry, registryHandler.List)
	rg.GET(PathStats, statsHandler.Get)
}

func addEventRoutes(rg *gin.RouterGroup, eventHandler *handlers.EventHandler) {
	events := rg.Group(PathEvents)
	{
		events.GET("", eventHandler.ListEvents)
		events.GET("/:id", eventHandler.GetEvent)
		events.POST("/:id/registrations", eventHandler.Register)
	}
}

func addAdminRoutes(rg *gin.RouterGroup, adminHandler *handlers.AdminHandler, eventHandler *handlers.EventHandler, jwtSecret []byte) {
	admin := rg.Group(PathAdmin, middleware.RequireAdmin(jwtSecret))
	{
		admin.POST(PathEvents, eventHandler.CreateEvent)
		admin.POST("/needs/:id/close", adminHandler.ForceClose)
		admin.POST("/needs/:id/reopen", adminHandler.ForceReopen)
		admin.DELETE("/:collection/:id", adminHandler.ForceDelete)
	}
}
