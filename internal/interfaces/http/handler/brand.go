package handler

import (
	catalogapp "github.com/furnimart/backend/internal/application/catalog"
	"github.com/gin-gonic/gin"
)

// BrandHandler handles brand endpoints
type BrandHandler struct {
	BaseHandler
	brandService *catalogapp.BrandService
}

// NewBrandHandler creates a new BrandHandler
func NewBrandHandler(brandService *catalogapp.BrandService) *BrandHandler {
	return &BrandHandler{brandService: brandService}
}

// List returns all brands
func (h *BrandHandler) List(c *gin.Context) {
	brands, err := h.brandService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, brands)
}

// GetByID returns a single brand
func (h *BrandHandler) GetByID(c *gin.Context) {
	brandID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid brand ID format")
		return
	}

	resp, err := h.brandService.GetByID(c.Request.Context(), brandID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// GetBySlug returns a single brand by its URL slug
func (h *BrandHandler) GetBySlug(c *gin.Context) {
	resp, err := h.brandService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Create adds a brand. Admin only.
func (h *BrandHandler) Create(c *gin.Context) {
	var req catalogapp.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.brandService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update changes a brand. Admin only.
func (h *BrandHandler) Update(c *gin.Context) {
	brandID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid brand ID format")
		return
	}

	var req catalogapp.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.ValidationError(c, err)
		return
	}

	resp, err := h.brandService.Update(c.Request.Context(), brandID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a brand. Admin only.
func (h *BrandHandler) Delete(c *gin.Context) {
	brandID, err := parseIDParam(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid brand ID format")
		return
	}

	if err := h.brandService.Delete(c.Request.Context(), brandID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
