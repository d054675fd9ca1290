package handlers

import (
	"net/http"

	request "athwela/internal/adapter/http/dto/request"
	"athwela/internal/domain/entities"
	"athwela/internal/usecase"

	"github.com/gin-gonic/gin"
)

// GuardHandler exposes PIN-gated edit and delete for every secured collection.
type GuardHandler struct {
	guard    usecase.IPinGuard
	registry usecase.IRegistryUseCase
}

func NewGuardHandler(guard usecase.IPinGuard, registry usecase.IRegistryUseCase) *GuardHandler {
	return &GuardHandler{guard: guard, registry: registry}
}

// Update returns the PATCH handler for collection.
func (h *GuardHandler) Update(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload request.UpdateRecordRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeInvalidPayload(c)
			return
		}

		id := c.Param("id")
		if err := h.guard.AuthorizedUpdate(c.Request.Context(), collection, id, payload.Pin, entities.Patch(payload.Fields)); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id, "updated": true})
	}
}

// Delete returns the DELETE handler for collection.
func (h *GuardHandler) Delete(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload request.PinRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			writeInvalidPayload(c)
			return
		}

		if err := h.guard.AuthorizedDelete(c.Request.Context(), sessionFrom(c, h.registry), collection, c.Param("id"), payload.Pin); err != nil {
			writeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
