package handler

import (
	"github.com/gin-gonic/gin"
	appregistry "github.com/registry/backend/internal/application/registry"
)

// NaturalPersonHandler handles natural person endpoints
type NaturalPersonHandler struct {
	BaseHandler
	service *appregistry.NaturalPersonService
}

// NewNaturalPersonHandler creates a new NaturalPersonHandler
func NewNaturalPersonHandler(service *appregistry.NaturalPersonService) *NaturalPersonHandler {
	return &NaturalPersonHandler{service: service}
}

// List godoc
//
//	@Summary	List natural persons
//	@Tags		physical-people
//	@Produce	json
//	@Success	200	{array}	appregistry.NaturalPersonResponse
//	@Failure	403	{object}	DetailResponse
//	@Router		/physical-people/ [get]
func (h *NaturalPersonHandler) List(c *gin.Context) {
	people, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, people)
}

// Create godoc
//
//	@Summary	Register a natural person
//	@Tags		physical-people
//	@Accept		json
//	@Produce	json
//	@Param		request	body		appregistry.NaturalPersonRequest	true	"Natural person"
//	@Success	201		{object}	appregistry.NaturalPersonResponse
//	@Failure	400		{object}	map[string][]string
//	@Router		/physical-people/ [post]
func (h *NaturalPersonHandler) Create(c *gin.Context) {
	var req appregistry.NaturalPersonRequest
	if !h.bindJSON(c, &req) {
		return
	}

	person, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, person)
}

// Get godoc
//
//	@Summary	Retrieve a natural person
//	@Tags		physical-people
//	@Produce	json
//	@Param		id	path		int	true	"Natural person ID"
//	@Success	200	{object}	appregistry.NaturalPersonResponse
//	@Failure	404
//	@Router		/physical-people/{id}/ [get]
func (h *NaturalPersonHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	person, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, person)
}

// Update godoc
//
//	@Summary	Replace a natural person
//	@Tags		physical-people
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int									true	"Natural person ID"
//	@Param		request	body		appregistry.NaturalPersonRequest	true	"Natural person"
//	@Success	200		{object}	appregistry.NaturalPersonResponse
//	@Failure	400		{object}	map[string][]string
//	@Failure	404
//	@Router		/physical-people/{id}/ [put]
func (h *NaturalPersonHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	// A missing record wins over a bad body
	if _, err := h.service.Get(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	var req appregistry.NaturalPersonRequest
	if !h.bindJSON(c, &req) {
		return
	}

	person, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, person)
}

// Delete godoc
//
//	@Summary	Delete a natural person
//	@Tags		physical-people
//	@Param		id	path	int	true	"Natural person ID"
//	@Success	200
//	@Failure	404
//	@Router		/physical-people/{id}/ [delete]
func (h *NaturalPersonHandler) Delete(c *gin.Context) {
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
