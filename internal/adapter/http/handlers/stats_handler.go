package handlers

import (
	"net/http"

	"athwela/internal/usecase"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	usecase usecase.IStatsUseCase
}

func NewStatsHandler(uc usecase.IStatsUseCase) *StatsHandler {
	return &StatsHandler{usecase: uc}
}

func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
