package handlers

import (
	"net/http"

	request "athwela/internal/adapter/http/dto/request"
	response "athwela/internal/adapter/http/dto/response"
	"athwela/internal/usecase"

	"github.com/gin-gonic/gin"
)

// NeedHandler serves the need lifecycle: post, browse, pledge, cancel, receive, reopen.
type NeedHandler struct {
	usecase  usecase.INeedUseCase
	registry usecase.IRegistryUseCase
}

func NewNeedHandler(uc usecase.INeedUseCase, registry usecase.IRegistryUseCase) *NeedHandler {
	return &NeedHandler{usecase: uc, registry: registry}
}

// CreateNeed godoc
// @Summary  Post a need
// @Tags     needs
// @Accept   json
// @Produce  json
// @Param    X-Client-ID  header  string                     false  "client id"
// @Param    payload      body    request.CreateNeedRequest  true   "need"
// @Success  201  {object}  response.NeedResponse
// @Failure  400  {object}  pkg.HTTPError
// @Router   /needs [post]
func (h *NeedHandler) CreateNeed(c *gin.Context) {
	var payload request.CreateNeedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	need, err := h.usecase.Create(c.Request.Context(), sessionFrom(c, h.registry), payload.ToEntity(), payload.SecretPin)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.FromNeed(need))
}

// ListNeeds godoc
// @Summary  List needs visible to the client
// @Tags     needs
// @Produce  json
// @Param    X-Client-ID  header  string  false  "client id"
// @Success  200  {array}  response.NeedResponse
// @Router   /needs [get]
func (h *NeedHandler) ListNeeds(c *gin.Context) {
	needs, err := h.usecase.List(c.Request.Context(), sessionFrom(c, h.registry))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNeeds(needs))
}

// GetNeed godoc
// @Summary  Get a need
// @Tags     needs
// @Produce  json
// @Param    id  path  string  true  "need id"
// @Success  200  {object}  response.NeedResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /needs/{id} [get]
func (h *NeedHandler) GetNeed(c *gin.Context) {
	need, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNeed(need))
}

// Pledge godoc
// @Summary  Pledge units to a need
// @Tags     needs
// @Accept   json
// @Produce  json
// @Param    id       path    string                 true  "need id"
// @Param    payload  body    request.PledgeRequest  true  "pledge"
// @Success  201  {object}  response.PledgeResultResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /needs/{id}/pledges [post]
func (h *NeedHandler) Pledge(c *gin.Context) {
	var payload request.PledgeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	need, err := h.usecase.Pledge(c.Request.Context(), sessionFrom(c, h.registry), c.Param("id"), payload.Amount, payload.Pin)
	if err != nil {
		writeError(c, err)
		return
	}

	// The returned need is the state this pledge wrote, so its last entry is ours.
	var pledgeID string
	if p, ok := need.LatestPledge(); ok {
		pledgeID = p.ID
	}
	c.JSON(http.StatusCreated, response.PledgeResultResponse{PledgeID: pledgeID, Need: response.FromNeed(need)})
}

// CancelPledge godoc
// @Summary  Withdraw a pledge with the donor PIN
// @Tags     needs
// @Accept   json
// @Produce  json
// @Param    id         path  string              true  "need id"
// @Param    pledge_id  path  string              true  "pledge id"
// @Param    payload    body  request.PinRequest  true  "donor pin"
// @Success  200  {object}  response.NeedResponse
// @Failure  403  {object}  pkg.HTTPError
// @Router   /needs/{id}/pledges/{pledge_id} [delete]
func (h *NeedHandler) CancelPledge(c *gin.Context) {
	var payload request.PinRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	need, err := h.usecase.CancelPledge(c.Request.Context(), c.Param("id"), c.Param("pledge_id"), payload.Pin)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNeed(need))
}

// Receive godoc
// @Summary  Confirm delivery with the owner PIN
// @Tags     needs
// @Accept   json
// @Produce  json
// @Param    id       path  string                  true  "need id"
// @Param    payload  body  request.ReceiveRequest  true  "receipt"
// @Success  200  {object}  response.NeedResponse
// @Router   /needs/{id}/receipts [post]
func (h *NeedHandler) Receive(c *gin.Context) {
	var payload request.ReceiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	need, err := h.usecase.Receive(c.Request.Context(), c.Param("id"), payload.Amount, payload.Pin)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNeed(need))
}

// Reopen godoc
// @Summary  Reopen a need with the owner PIN
// @Tags     needs
// @Accept   json
// @Produce  json
// @Param    id       path  string              true  "need id"
// @Param    payload  body  request.PinRequest  true  "owner pin"
// @Success  200  {object}  response.NeedResponse
// @Failure  409  {object}  pkg.HTTPError
// @Router   /needs/{id}/reopen [post]
func (h *NeedHandler) Reopen(c *gin.Context) {
	var payload request.PinRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeInvalidPayload(c)
		return
	}

	need, err := h.usecase.Reopen(c.Request.Context(), c.Param("id"), payload.Pin)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromNeed(need))
}
