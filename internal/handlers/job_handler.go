package handlers

import (
	"fpempleo_backend/internal/middleware"
	"fpempleo_backend/internal/services"
	"fpempleo_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	BaseHandler
	jobService *services.JobService
}

func NewJobHandler(base BaseHandler, jobService *services.JobService) *JobHandler {
	return &JobHandler{BaseHandler: base, jobService: jobService}
}

func (h *JobHandler) Create(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	job, err := h.jobService.Create(middleware.GetUserID(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.Created(c, job)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.jobService.Get(c.Param("id"), middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) Update(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	job, err := h.jobService.Update(c.Param("id"), middleware.GetUserID(c), middleware.GetRole(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) ExtendExpiry(c *gin.Context) {
	var req dto.ExtendExpiryRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	job, err := h.jobService.ExtendExpiry(c.Param("id"), middleware.GetUserID(c), middleware.GetRole(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) SetActive(c *gin.Context) {
	var req dto.SetActiveRequest
	if !h.BindAndValidate(c, &req) {
		return
	}

	job, err := h.jobService.SetActive(c.Param("id"), middleware.GetUserID(c), middleware.GetRole(c), req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, job)
}

func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobService.Delete(c.Param("id"), middleware.GetUserID(c), middleware.GetRole(c)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.NoContent(c)
}

func (h *JobHandler) Search(c *gin.Context) {
	var query dto.JobSearchQuery
	if !h.BindQuery(c, &query) {
		return
	}

	page, err := h.jobService.Search(query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, page)
}

func (h *JobHandler) MyJobs(c *gin.Context) {
	jobs, err := h.jobService.MyJobs(middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.OK(c, jobs)
}
