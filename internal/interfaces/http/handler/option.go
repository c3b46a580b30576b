package handler

import (
	"github.com/gin-gonic/gin"
	postalapp "github.com/postalis/backend/internal/application/postal"
	"github.com/postalis/backend/internal/domain/postal"
)

// OptionHandler serves the admin CRUD endpoints for one flat catalog option
// kind. Print colors, print sides and postage speeds share this handler; the
// resource name decides the route prefix.
type OptionHandler[T postal.CatalogOption] struct {
	BaseHandler
	resource string
	service  *postalapp.OptionService[T]
}

// NewOptionHandler creates an OptionHandler serving /<resource> routes
func NewOptionHandler[T postal.CatalogOption](resource string, service *postalapp.OptionService[T]) *OptionHandler[T] {
	return &OptionHandler[T]{
		resource: resource,
		service:  service,
	}
}

// RegisterRoutes registers the option CRUD routes
func (h *OptionHandler[T]) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/" + h.resource)
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.GetByID)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// Create adds a new option to the catalog
func (h *OptionHandler[T]) Create(c *gin.Context) {
	var req postalapp.CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	option, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, option)
}

// List returns all options of this kind
func (h *OptionHandler[T]) List(c *gin.Context) {
	options, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, options)
}

// GetByID returns a single option
func (h *OptionHandler[T]) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid option ID format")
		return
	}

	option, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, option)
}

// Update modifies an option and invalidates affected tenant configurations
func (h *OptionHandler[T]) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid option ID format")
		return
	}

	var req postalapp.UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	option, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, option)
}

// Delete removes an option together with its tenant assignments
func (h *OptionHandler[T]) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid option ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
