package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	postalapp "github.com/postalis/backend/internal/application/postal"
	"github.com/postalis/backend/internal/interfaces/http/dto"
)

// maxRateFileSize caps uploaded price list files at 8 MiB
const maxRateFileSize = 8 << 20

// RateHandler handles postage rate API endpoints
type RateHandler struct {
	BaseHandler
	service       *postalapp.RateService
	importService *postalapp.RateImportService
}

// NewRateHandler creates a new RateHandler
func NewRateHandler(service *postalapp.RateService, importService *postalapp.RateImportService) *RateHandler {
	return &RateHandler{
		service:       service,
		importService: importService,
	}
}

// RegisterRoutes registers the postage rate routes
func (h *RateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/rates")
	group.POST("", h.Create)
	group.GET("", h.List)
	group.GET("/overlaps", h.Overlaps)
	group.POST("/import", h.Import)
	group.GET("/:id", h.GetByID)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}

// Create godoc
// @Summary      Create a postage rate
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        request body postalapp.CreateRateRequest true "Rate creation request"
// @Success      201 {object} dto.Response{data=postalapp.RateResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/rates [post]
func (h *RateHandler) Create(c *gin.Context) {
	var req postalapp.CreateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rate, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, rate)
}

// List godoc
// @Summary      List postage rates
// @Tags         rates
// @Produce      json
// @Success      200 {object} dto.Response{data=[]postalapp.RateResponse}
// @Router       /catalog/rates [get]
func (h *RateHandler) List(c *gin.Context) {
	rates, err := h.service.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rates)
}

// Overlaps godoc
// @Summary      Report overlapping rate bands
// @Description  Lists pairs of active rates whose weight bands overlap for
// @Description  the same envelope format and speed.
// @Tags         rates
// @Produce      json
// @Success      200 {object} dto.Response{data=[]postalapp.RateOverlapResponse}
// @Router       /catalog/rates/overlaps [get]
func (h *RateHandler) Overlaps(c *gin.Context) {
	overlaps, err := h.service.DetectOverlaps(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, overlaps)
}

// Import godoc
// @Summary      Import a price list file
// @Description  Uploads a semicolon-separated price list and reconciles it
// @Description  against the stored rates. Malformed rows are reported per
// @Description  row and do not abort the import.
// @Tags         rates
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Price list file"
// @Success      200 {object} dto.Response{data=postalapp.RateImportResult}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/rates/import [post]
func (h *RateHandler) Import(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "Missing file upload")
		return
	}
	if fileHeader.Size > maxRateFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "Price list file exceeds the size limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.InternalError(c, "Failed to read uploaded file")
		return
	}
	defer file.Close()

	result, err := h.importService.ImportCSV(c.Request.Context(), file)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// GetByID godoc
// @Summary      Get a postage rate by ID
// @Tags         rates
// @Produce      json
// @Param        id path string true "Rate ID" format(uuid)
// @Success      200 {object} dto.Response{data=postalapp.RateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/rates/{id} [get]
func (h *RateHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid rate ID format")
		return
	}

	rate, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rate)
}

// Update godoc
// @Summary      Update a postage rate
// @Tags         rates
// @Accept       json
// @Produce      json
// @Param        id path string true "Rate ID" format(uuid)
// @Param        request body postalapp.UpdateRateRequest true "Rate update request"
// @Success      200 {object} dto.Response{data=postalapp.RateResponse}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/rates/{id} [put]
func (h *RateHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid rate ID format")
		return
	}

	var req postalapp.UpdateRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	rate, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, rate)
}

// Delete godoc
// @Summary      Delete a postage rate
// @Tags         rates
// @Param        id path string true "Rate ID" format(uuid)
// @Success      204 "No Content"
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /catalog/rates/{id} [delete]
func (h *RateHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid rate ID format")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
