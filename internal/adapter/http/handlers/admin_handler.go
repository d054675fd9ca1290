package handlers

import (
	"net/http"

	response "athwela/internal/adapter/http/dto/response"
	"athwela/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves moderator overrides. Routes are mounted behind the admin JWT
// middleware; no PIN is involved.
type AdminHandler struct {
	usecase usecase.IAdminUseCase
}

func NewAdminHandler(uc usecase.IAdminUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) ForceDelete(c *gin.Context) {
	if err := h.usecase.ForceDelete(c.Request.Context(), collectionFromPath(c.Param("collection")), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ForceClose(c *gin.Context) {
	need, err := h.usecase.ForceClose(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNeed(need))
}

func (h *AdminHandler) ForceReopen(c *gin.Context) {
	need, err := h.usecase.ForceReopen(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNeed(need))
}
