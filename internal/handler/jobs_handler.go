package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thesolution-at/alz-backend/internal/common"
	"github.com/thesolution-at/alz-backend/internal/service"
)

// JobsHandler handles HTTP requests for job postings
type JobsHandler struct {
	content service.ContentService
}

// NewJobsHandler creates a new JobsHandler
func NewJobsHandler(content service.ContentService) *JobsHandler {
	return &JobsHandler{content: content}
}

// ListJobs godoc
// @Summary      Stellenangebote abrufen
// @Description  Alle aktiven Stellenangebote, neueste zuerst
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.JobEntry}
// @Router       /jobs [get]
func (h *JobsHandler) ListJobs(c *gin.Context) {
	jobs := h.content.GetJobListings(c.Request.Context())
	common.SuccessResponse(c, jobs, &common.Meta{Total: len(jobs)})
}

// GetJob godoc
// @Summary      Stellenangebot abrufen
// @Description  Ein Stellenangebot anhand seiner ID abrufen
// @Tags         jobs
// @Produce      json
// @Param        id  path  string  true  "Eintrags-ID"
// @Success      200  {object}  common.APIResponse{data=domain.JobEntry}
// @Failure      404  {object}  common.APIResponse
// @Router       /jobs/{id} [get]
func (h *JobsHandler) GetJob(c *gin.Context) {
	id := c.Param("id")

	job := h.content.GetJobByID(c.Request.Context(), id)
	if job == nil {
		common.ErrorResponse(c, 404, "Stellenangebot nicht gefunden", nil)
		return
	}

	common.SuccessResponse(c, job, nil)
}
