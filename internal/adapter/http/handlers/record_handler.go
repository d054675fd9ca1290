package handlers

import (
	"net/http"

	request "athwela/internal/adapter/http/dto/request"
	"athwela/internal/usecase"

	"github.com/gin-gonic/gin"
)

// RecordHandler serves people, volunteer and service-request boards.
type RecordHandler struct {
	usecase  usecase.IRecordUseCase
	registry usecase.IRegistryUseCase
}

func NewRecordHandler(uc usecase.IRecordUseCase, registry usecase.IRegistryUseCase) *RecordHandler {
	return &RecordHandler{usecase: uc, registry: registry}
}

func (h *RecordHandler) CreatePerson(c *gin.Context) {
	var payload request.CreatePersonRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	p, err := h.usecase.CreatePerson(c.Request.Context(), sessionFrom(c, h.registry), payload.ToEntity(), payload.SecretPin)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *RecordHandler) ListPeople(c *gin.Context) {
	people, err := h.usecase.ListPeople(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, people)
}

func (h *RecordHandler) CreateVolunteer(c *gin.Context) {
	var payload request.CreateVolunteerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	v, err := h.usecase.CreateVolunteer(c.Request.Context(), sessionFrom(c, h.registry), payload.ToEntity(), payload.SecretPin)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

func (h *RecordHandler) ListVolunteers(c *gin.Context) {
	volunteers, err := h.usecase.ListVolunteers(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, volunteers)
}

func (h *RecordHandler) CreateServiceRequest(c *gin.Context) {
	var payload request.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}
	r, err := h.usecase.CreateServiceRequest(c.Request.Context(), sessionFrom(c, h.registry), payload.ToEntity(), payload.SecretPin)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

func (h *RecordHandler) ListServiceRequests(c *gin.Context) {
	requests, err := h.usecase.ListServiceRequests(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}
