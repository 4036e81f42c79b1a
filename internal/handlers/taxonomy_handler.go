package handlers

import (
	"fpempleo_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler serves the public, read-only taxonomy endpoints.
type TaxonomyHandler struct {
	BaseHandler
	taxonomyService *services.TaxonomyService
}

func NewTaxonomyHandler(base BaseHandler, taxonomyService *services.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{BaseHandler: base, taxonomyService: taxonomyService}
}

func (h *TaxonomyHandler) ListFamilies(c *gin.Context) {
	families, err := h.taxonomyService.ListFamilies()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, families)
}

func (h *TaxonomyHandler) ListCycles(c *gin.Context) {
	cycles, err := h.taxonomyService.ListCycles(c.Query("family_id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, cycles)
}

func (h *TaxonomyHandler) ListCenters(c *gin.Context) {
	centers, err := h.taxonomyService.ListCenters()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, centers)
}
