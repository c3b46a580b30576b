package handler

import (
	"github.com/gin-gonic/gin"
	identityapp "github.com/postalis/backend/internal/application/identity"
	postalapp "github.com/postalis/backend/internal/application/postal"
)

// TenantHandler handles tenant administration API endpoints
type TenantHandler struct {
	BaseHandler
	service       *identityapp.TenantService
	configService *postalapp.TenantConfigService
}

// NewTenantHandler creates a new TenantHandler
func NewTenantHandler(service *identityapp.TenantService, configService *postalapp.TenantConfigService) *TenantHandler {
	return &TenantHandler{
		service:       service,
		configService: configService,
	}
}

// RegisterRoutes registers the tenant administration routes
func (h *TenantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/tenants")
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/:id", h.GetByID)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	group.PUT("/:id/assignments", h.ReplaceAssignments)
}

// Create godoc
// @Summary      Register a tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        request body identityapp.CreateTenantRequest true "Tenant creation request"
// @Success      201 {object} dto.Response{data=identityapp.TenantResponse}
// @Failure      409 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/tenants [post]
func (h *TenantHandler) Create(c *gin.Context) {
	var req identityapp.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tenant, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, tenant)
}

// List godoc
// @Summary      List tenants
// @Tags         tenants
// @Produce      json
// @Success      200 {object} dto.Response{data=[]identityapp.TenantResponse}
// @Router       /admin/tenants [get]
func (h *TenantHandler) List(c *gin.Context) {
	tenants, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenants)
}

// GetByID godoc
// @Summary      Get a tenant by ID
// @Tags         tenants
// @Produce      json
// @Param        id path string true "Tenant ID" format(uuid)
// @Success      200 {object} dto.Response{data=identityapp.TenantResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/tenants/{id} [get]
func (h *TenantHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID format")
		return
	}

	tenant, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// Update godoc
// @Summary      Update a tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id path string true "Tenant ID" format(uuid)
// @Param        request body identityapp.UpdateTenantRequest true "Tenant update request"
// @Success      200 {object} dto.Response{data=identityapp.TenantResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/tenants/{id} [put]
func (h *TenantHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID format")
		return
	}

	var req identityapp.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	tenant, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tenant)
}

// Delete godoc
// @Summary      Delete a tenant
// @Tags         tenants
// @Param        id path string true "Tenant ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/tenants/{id} [delete]
func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ReplaceAssignments godoc
// @Summary      Replace a tenant's enabled options for one catalog kind
// @Description  Replaces the tenant's enabled option set for the given kind
// @Description  and evicts the tenant's cached configuration.
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id path string true "Tenant ID" format(uuid)
// @Param        request body postalapp.ReplaceAssignmentsRequest true "Assignment replacement request"
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /admin/tenants/{id}/assignments [put]
func (h *TenantHandler) ReplaceAssignments(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID format")
		return
	}

	var req postalapp.ReplaceAssignmentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.configService.ReplaceAssignments(c.Request.Context(), id, req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
