package handlers

import (
	"net/http"

	"athwela/internal/domain/entities"
	"athwela/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RegistryHandler struct {
	usecase usecase.IRegistryUseCase
}

func NewRegistryHandler(uc usecase.IRegistryUseCase) *RegistryHandler {
	return &RegistryHandler{usecase: uc}
}

// List returns the calling client's "my posts" (role=owner, default) or
// "my pledges" (role=pledger) entries.
func (h *RegistryHandler) List(c *gin.Context) {
	role := entities.RegistryRole(c.DefaultQuery("role", string(entities.RegistryRoleOwner)))

	entries, err := h.usecase.List(c.Request.Context(), sessionFrom(c, h.usecase), role)
	if err != nil {
		writeError(c, err)
		return
	}
	if entries == nil {
		entries = []entities.RegistryEntry{}
	}
	c.JSON(http.StatusOK, entries)
}
