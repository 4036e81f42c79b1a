package handlers

import (
	"fpempleo_backend/internal/middleware"
	"fpempleo_backend/internal/services"
	"fpempleo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	BaseHandler
	profileService *services.ProfileService
	accountService *services.AccountService
}

func NewProfileHandler(
	base BaseHandler,
	profileService *services.ProfileService,
	accountService *services.AccountService,
) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
		accountService: accountService,
	}
}

func (h *ProfileHandler) GetMe(c *gin.Context) {
	view, err := h.profileService.GetOwnProfile(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, view)
}

func (h *ProfileHandler) UpdateAlumnusProfile(c *gin.Context) {
	var req dto.UpdateAlumnusProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	view, err := h.profileService.UpdateAlumnusProfile(middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, view)
}

func (h *ProfileHandler) UpdateCompanyProfile(c *gin.Context) {
	var req dto.UpdateCompanyProfileRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	view, err := h.profileService.UpdateCompanyProfile(middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, view)
}

func (h *ProfileHandler) GetCV(c *gin.Context) {
	cv, err := h.profileService.GetCV(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, cv)
}

func (h *ProfileHandler) UpdateCV(c *gin.Context) {
	var req dto.UpdateCVRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.profileService.UpdateCV(middleware.GetUserID(c), req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "CV updated"})
}

func (h *ProfileHandler) UpdatePrivacy(c *gin.Context) {
	var req dto.UpdatePrivacyRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	if err := h.profileService.UpdatePrivacy(middleware.GetUserID(c), req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, gin.H{"message": "Privacy settings updated"})
}

func (h *ProfileHandler) EraseMe(c *gin.Context) {
	if err := h.accountService.EraseOwnAccount(middleware.GetUserID(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

// Public directories

func (h *ProfileHandler) ListAlumni(c *gin.Context) {
	var query dto.DirectoryQuery
	if !h.BindQuery(c, &query) {
		return
	}

	page, err := h.profileService.ListPublicAlumni(query.Pagination)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, page)
}

func (h *ProfileHandler) ListCompanies(c *gin.Context) {
	var query dto.DirectoryQuery
	if !h.BindQuery(c, &query) {
		return
	}

	page, err := h.profileService.ListPublicCompanies(query.Pagination)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, page)
}

func (h *ProfileHandler) GetPublicProfile(c *gin.Context) {
	view, err := h.profileService.GetPublicProfile(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, view)
}
