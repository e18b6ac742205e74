package handler

import (
	"github.com/gin-gonic/gin"
	appregistry "github.com/registry/backend/internal/application/registry"
)

// OwnerIDQuery filters the goods list by owner
const OwnerIDQuery = "ownerId"

// GoodHandler handles good endpoints
type GoodHandler struct {
	BaseHandler
	service *appregistry.GoodService
}

// NewGoodHandler creates a new GoodHandler
func NewGoodHandler(service *appregistry.GoodService) *GoodHandler {
	return &GoodHandler{service: service}
}

// List godoc
//
//	@Summary	List goods
//	@Tags		goods
//	@Produce	json
//	@Param		ownerId	query	string	false	"Only goods owned by this taxId or registrationId"
//	@Success	200		{array}	appregistry.GoodResponse
//	@Router		/goods/ [get]
func (h *GoodHandler) List(c *gin.Context) {
	var (
		goods []appregistry.GoodResponse
		err   error
	)
	if ownerID, ok := c.GetQuery(OwnerIDQuery); ok {
		goods, err = h.service.ListByOwner(c.Request.Context(), ownerID)
	} else {
		goods, err = h.service.List(c.Request.Context())
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, goods)
}

// Create godoc
//
//	@Summary	Register a good
//	@Tags		goods
//	@Accept		json
//	@Produce	json
//	@Param		request	body		appregistry.GoodRequest	true	"Good"
//	@Success	201		{object}	appregistry.GoodResponse
//	@Failure	400		{object}	map[string][]string
//	@Router		/goods/ [post]
func (h *GoodHandler) Create(c *gin.Context) {
	var req appregistry.GoodRequest
	if !h.bindJSON(c, &req) {
		return
	}

	good, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, good)
}

// Get godoc
//
//	@Summary	Retrieve a good
//	@Tags		goods
//	@Produce	json
//	@Param		id	path		int	true	"Good ID"
//	@Success	200	{object}	appregistry.GoodResponse
//	@Failure	404
//	@Router		/goods/{id}/ [get]
func (h *GoodHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	good, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, good)
}

// Update godoc
//
//	@Summary	Replace a good
//	@Tags		goods
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"Good ID"
//	@Param		request	body		appregistry.GoodRequest	true	"Good"
//	@Success	200		{object}	appregistry.GoodResponse
//	@Failure	400		{object}	map[string][]string
//	@Failure	404
//	@Router		/goods/{id}/ [put]
func (h *GoodHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if _, err := h.service.Get(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	var req appregistry.GoodRequest
	if !h.bindJSON(c, &req) {
		return
	}

	good, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, good)
}

// Delete godoc
//
//	@Summary	Delete a good
//	@Tags		goods
//	@Param		id	path	int	true	"Good ID"
//	@Success	200
//	@Failure	404
//	@Router		/goods/{id}/ [delete]
func (h *GoodHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Deleted(c)
}
