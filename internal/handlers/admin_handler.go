package handlers

import (
	"fpempleo_backend/internal/middleware"
	"fpempleo_backend/internal/services"
	"fpempleo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	BaseHandler
	adminService    *services.AdminService
	accountService  *services.AccountService
	taxonomyService *services.TaxonomyService
}

func NewAdminHandler(
	base BaseHandler,
	adminService *services.AdminService,
	accountService *services.AccountService,
	taxonomyService *services.TaxonomyService,
) *AdminHandler {
	return &AdminHandler{
		BaseHandler:     base,
		adminService:    adminService,
		accountService:  accountService,
		taxonomyService: taxonomyService,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var query dto.AdminUserQuery
	if !h.BindQuery(c, &query) {
		return
	}

	page, err := h.adminService.ListUsers(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, page)
}

func (h *AdminHandler) EraseUser(c *gin.Context) {
	if err := h.accountService.AdminEraseUser(middleware.GetUserID(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *AdminHandler) ListJobs(c *gin.Context) {
	var query dto.JobSearchQuery
	if !h.BindQuery(c, &query) {
		return
	}

	page, err := h.adminService.ListJobs(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, page)
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminService.Stats()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, stats)
}

// SMTP settings

func (h *AdminHandler) GetSMTPSettings(c *gin.Context) {
	settings, err := h.adminService.GetSMTPSettings()
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if settings == nil {
		h.OK(c, gin.H{"message": "No override configured, file settings in use"})
		return
	}
	h.OK(c, settings)
}

func (h *AdminHandler) UpdateSMTPSettings(c *gin.Context) {
	var req dto.UpdateSMTPSettingsRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	settings, err := h.adminService.UpdateSMTPSettings(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, settings)
}

// Taxonomy management

func (h *AdminHandler) CreateFamily(c *gin.Context) {
	var req dto.CreateFamilyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	family, err := h.taxonomyService.CreateFamily(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, family)
}

func (h *AdminHandler) DeleteFamily(c *gin.Context) {
	if err := h.taxonomyService.DeleteFamily(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *AdminHandler) CreateCycle(c *gin.Context) {
	var req dto.CreateCycleRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	cycle, err := h.taxonomyService.CreateCycle(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, cycle)
}

func (h *AdminHandler) DeleteCycle(c *gin.Context) {
	if err := h.taxonomyService.DeleteCycle(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *AdminHandler) CreateCenter(c *gin.Context) {
	var req dto.CreateCenterRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	center, err := h.taxonomyService.CreateCenter(req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, center)
}

func (h *AdminHandler) DeleteCenter(c *gin.Context) {
	if err := h.taxonomyService.DeleteCenter(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}
