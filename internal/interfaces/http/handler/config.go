package handler

import (
	"github.com/gin-gonic/gin"
	postalapp "github.com/postalis/backend/internal/application/postal"
	"github.com/postalis/backend/internal/interfaces/http/middleware"
)

// ConfigHandler serves the tenant-facing configuration resolution endpoint
type ConfigHandler struct {
	BaseHandler
	service *postalapp.TenantConfigService
}

// NewConfigHandler creates a new ConfigHandler
func NewConfigHandler(service *postalapp.TenantConfigService) *ConfigHandler {
	return &ConfigHandler{service: service}
}

// RegisterRoutes registers the configuration resolution routes
func (h *ConfigHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/config")
	group.Use(middleware.TenantKey())
	group.GET("", h.Resolve)
}

// Resolve godoc
// @Summary      Resolve the caller's tenant configuration
// @Description  Returns the tenant's enabled print colors, print sides,
// @Description  envelope formats and postage speeds. Served from cache when
// @Description  fresh, rebuilt from the catalog store otherwise.
// @Tags         config
// @Produce      json
// @Param        X-Tenant-Subdomain header string false "Tenant subdomain (defaults to the host subdomain)"
// @Success      200 {object} dto.Response
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      503 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /config [get]
func (h *ConfigHandler) Resolve(c *gin.Context) {
	view, err := h.service.Resolve(c.Request.Context(), middleware.GetTenantKey(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, view)
}
