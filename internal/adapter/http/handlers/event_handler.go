package handlers

import (
	"net/http"

	request "athwela/internal/adapter/http/dto/request"
	"athwela/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EventHandler serves volunteer events. CreateEvent is mounted on the admin group.
type EventHandler struct {
	usecase usecase.IVolunteerEventUseCase
}

func NewEventHandler(uc usecase.IVolunteerEventUseCase) *EventHandler {
	return &EventHandler{usecase: uc}
}

// CreateEvent godoc
// @Summary      Create a volunteer event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        payload  body      request.CreateEventRequest  true  "Event"
// @Success      201      {object}  entities.VolunteerEvent
// @Failure      400      {object}  pkg.HTTPError
// @Router       /admin/events [post]
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var payload request.CreateEventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	e, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

// ListEvents godoc
// @Summary      List volunteer events, soonest first
// @Tags         events
// @Produce      json
// @Success      200  {array}  entities.VolunteerEvent
// @Router       /events [get]
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// Register godoc
// @Summary      Take one volunteer slot on an event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event ID"
// @Success      200  {object}  entities.VolunteerEvent
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /events/{id}/registrations [post]
func (h *EventHandler) Register(c *gin.Context) {
	e, err := h.usecase.Register(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}
