package handler

import (
	"github.com/gin-gonic/gin"
	postalapp "github.com/postalis/backend/internal/application/postal"
)

// EnvelopeHandler handles envelope format API endpoints
type EnvelopeHandler struct {
	BaseHandler
	service *postalapp.EnvelopeService
}

// NewEnvelopeHandler creates a new EnvelopeHandler
func NewEnvelopeHandler(service *postalapp.EnvelopeService) *EnvelopeHandler {
	return &EnvelopeHandler{service: service}
}

// RegisterRoutes registers the envelope format routes
func (h *EnvelopeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/envelopes")
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.GetByID)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// Create godoc
// @Summary      Create an envelope format
// @Tags         envelopes
// @Accept       json
// @Produce      json
// @Param        request body postalapp.CreateEnvelopeRequest true "Envelope creation request"
// @Success      201 {object} dto.Response{data=postalapp.EnvelopeResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/envelopes [post]
func (h *EnvelopeHandler) Create(c *gin.Context) {
	var req postalapp.CreateEnvelopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	envelope, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, envelope)
}

// List godoc
// @Summary      List envelope formats
// @Tags         envelopes
// @Produce      json
// @Success      200 {object} dto.Response{data=[]postalapp.EnvelopeResponse}
// @Router       /catalog/envelopes [get]
func (h *EnvelopeHandler) List(c *gin.Context) {
	envelopes, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, envelopes)
}

// GetByID godoc
// @Summary      Get an envelope format by ID
// @Tags         envelopes
// @Produce      json
// @Param        id path string true "Envelope ID" format(uuid)
// @Success      200 {object} dto.Response{data=postalapp.EnvelopeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/envelopes/{id} [get]
func (h *EnvelopeHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid envelope ID format")
		return
	}

	envelope, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, envelope)
}

// Update godoc
// @Summary      Update an envelope format
// @Description  Updates an envelope format. Weight changes invalidate every
// @Description  cached tenant configuration; other changes invalidate only
// @Description  tenants with this envelope enabled.
// @Tags         envelopes
// @Accept       json
// @Produce      json
// @Param        id path string true "Envelope ID" format(uuid)
// @Param        request body postalapp.UpdateEnvelopeRequest true "Envelope update request"
// @Success      200 {object} dto.Response{data=postalapp.EnvelopeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/envelopes/{id} [put]
func (h *EnvelopeHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid envelope ID format")
		return
	}

	var req postalapp.UpdateEnvelopeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	envelope, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, envelope)
}

// Delete godoc
// @Summary      Delete an envelope format
// @Tags         envelopes
// @Param        id path string true "Envelope ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/envelopes/{id} [delete]
func (h *EnvelopeHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid envelope ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
