package handler

import (
	"github.com/gin-gonic/gin"
	postalapp "github.com/postalis/backend/internal/application/postal"
	"github.com/postalis/backend/internal/interfaces/http/middleware"
)

// PostageHandler serves the tenant-facing postage computation endpoints
type PostageHandler struct {
	BaseHandler
	service *postalapp.PostageService
}

// NewPostageHandler creates a new PostageHandler
func NewPostageHandler(service *postalapp.PostageService) *PostageHandler {
	return &PostageHandler{service: service}
}

// RegisterRoutes registers the postage computation routes
func (h *PostageHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/postage")
	group.Use(middleware.TenantKey())
	group.POST("/quote", h.Quote)
	group.POST("/envelopes", h.OfferedEnvelopes)
}

// Quote godoc
// @Summary      Compute postage for a submission
// @Description  Computes recipient count, physical weight and the applicable
// @Description  rate for a mailing, using only options the tenant has
// @Description  enabled.
// @Tags         postage
// @Accept       json
// @Produce      json
// @Param        X-Tenant-Subdomain header string false "Tenant subdomain (defaults to the host subdomain)"
// @Param        request body postalapp.QuoteRequest true "Quote request"
// @Success      200 {object} dto.Response{data=postalapp.QuoteResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      422 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /postage/quote [post]
func (h *PostageHandler) Quote(c *gin.Context) {
	var req postalapp.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	quote, err := h.service.Quote(c.Request.Context(), middleware.GetTenantKey(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, quote)
}

// OfferedEnvelopes godoc
// @Summary      List envelopes that can carry a submission
// @Description  Filters the tenant's enabled envelope formats down to those
// @Description  whose carry capacity admits the submission's sheet weight.
// @Tags         postage
// @Accept       json
// @Produce      json
// @Param        X-Tenant-Subdomain header string false "Tenant subdomain (defaults to the host subdomain)"
// @Param        request body postalapp.OfferedEnvelopesRequest true "Offered envelopes request"
// @Success      200 {object} dto.Response{data=[]postalapp.EnvelopeResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /postage/envelopes [post]
func (h *PostageHandler) OfferedEnvelopes(c *gin.Context) {
	var req postalapp.OfferedEnvelopesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	envelopes, err := h.service.ListOfferedEnvelopes(c.Request.Context(), middleware.GetTenantKey(c), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, envelopes)
}
