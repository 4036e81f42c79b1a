package handlers

import (
	"fpempleo_backend/internal/middleware"
	"fpempleo_backend/internal/services"
	"fpempleo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	BaseHandler
	applicationService *services.ApplicationService
}

func NewApplicationHandler(base BaseHandler, applicationService *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{BaseHandler: base, applicationService: applicationService}
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	var req dto.SubmitApplicationRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	application, err := h.applicationService.Submit(middleware.GetUserID(c), c.Param("id"), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, application)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	applications, err := h.applicationService.ListForJob(c.Param("id"), middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, applications)
}

func (h *ApplicationHandler) MyApplications(c *gin.Context) {
	applications, err := h.applicationService.MyApplications(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, applications)
}

func (h *ApplicationHandler) SetStatus(c *gin.Context) {
	var req dto.SetApplicationStatusRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	application, err := h.applicationService.SetStatus(c.Param("id"), middleware.GetUserID(c), middleware.GetRole(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, application)
}
