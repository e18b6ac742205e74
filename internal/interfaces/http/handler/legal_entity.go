package handler

import (
	"github.com/gin-gonic/gin"
	appregistry "github.com/registry/backend/internal/application/registry"
)

// LegalEntityHandler handles legal entity endpoints
type LegalEntityHandler struct {
	BaseHandler
	service *appregistry.LegalEntityService
}

// NewLegalEntityHandler creates a new LegalEntityHandler
func NewLegalEntityHandler(service *appregistry.LegalEntityService) *LegalEntityHandler {
	return &LegalEntityHandler{service: service}
}

// List godoc
//
//	@Summary	List legal entities
//	@Tags		legal-people
//	@Produce	json
//	@Success	200	{array}	appregistry.LegalEntityResponse
//	@Router		/legal-people/ [get]
func (h *LegalEntityHandler) List(c *gin.Context) {
	entities, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, entities)
}

// Create godoc
//
//	@Summary		Register a legal entity
//	@Description	ownerId must be the taxId of a natural person or the registrationId of a legal entity
//	@Tags			legal-people
//	@Accept			json
//	@Produce		json
//	@Param			request	body		appregistry.LegalEntityRequest	true	"Legal entity"
//	@Success		201		{object}	appregistry.LegalEntityResponse
//	@Failure		400		{object}	map[string][]string
//	@Router			/legal-people/ [post]
func (h *LegalEntityHandler) Create(c *gin.Context) {
	var req appregistry.LegalEntityRequest
	if !h.bindJSON(c, &req) {
		return
	}

	entity, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entity)
}

// Get godoc
//
//	@Summary	Retrieve a legal entity
//	@Tags		legal-people
//	@Produce	json
//	@Param		id	path		int	true	"Legal entity ID"
//	@Success	200	{object}	appregistry.LegalEntityResponse
//	@Failure	404
//	@Router		/legal-people/{id}/ [get]
func (h *LegalEntityHandler) Get(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	entity, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, entity)
}

// Update godoc
//
//	@Summary	Replace a legal entity
//	@Tags		legal-people
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int								true	"Legal entity ID"
//	@Param		request	body		appregistry.LegalEntityRequest	true	"Legal entity"
//	@Success	200		{object}	appregistry.LegalEntityResponse
//	@Failure	400		{object}	map[string][]string
//	@Failure	404
//	@Router		/legal-people/{id}/ [put]
func (h *LegalEntityHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if _, err := h.service.Get(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	var req appregistry.LegalEntityRequest
	if !h.bindJSON(c, &req) {
		return
	}

	entity, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.OK(c, entity)
}

// Delete godoc
//
//	@Summary	Delete a legal entity
//	@Tags		legal-people
//	@Param		id	path	int	true	"Legal entity ID"
//	@Success	200
//	@Failure	404
//	@Router		/legal-people/{id}/ [delete]
func (h *LegalEntityHandler) Delete(c *gin.Context) {
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
