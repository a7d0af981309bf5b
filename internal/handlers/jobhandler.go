package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/justsurfingit/amp-job-portal/internal/dtos"
	apperrors "github.com/justsurfingit/amp-job-portal/internal/errors"
	"github.com/justsurfingit/amp-job-portal/internal/services"
	"github.com/justsurfingit/amp-job-portal/internal/store"
)

// JobHandler serves the job board and the admin review queues.
type JobHandler struct {
	Store      *store.Store
	JobService *services.JobService
	Matcher    *services.MatcherService
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(st *store.Store, j *services.JobService, m *services.MatcherService) *JobHandler {
	return &JobHandler{Store: st, JobService: j, Matcher: m}
}

func (h *JobHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/jobs", h.ListJobs)
	rg.GET("/jobs/board", h.Board)
	rg.GET("/jobs/:id", h.GetJob)
	rg.POST("/jobs", h.CreateJob)
	rg.PATCH("/jobs/:id/status", h.ReviewJob)
	rg.POST("/jobs/:id/apply", h.Apply)

	rg.GET("/saved-jobs", h.SavedJobs)
	rg.POST("/saved-jobs/:id", h.ToggleSaved)

	rg.GET("/search-criteria", h.GetCriteria)
	rg.PUT("/search-criteria", h.SetCriteria)
	rg.DELETE("/search-criteria", h.ClearCriteria)

	rg.GET("/candidates", h.ListCandidates)
	rg.GET("/candidates/match", h.MatchCandidates)

	rg.GET("/corporates", h.ListCorporates)
	rg.PATCH("/corporates/:id/status", h.ReviewCorporate)

	rg.GET("/approvals", h.ListApprovals)
	rg.PATCH("/approvals/:id", h.ReviewApproval)
}

// ListJobs is GET /jobs?q=, every job regardless of approval.
func (h *JobHandler) ListJobs(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Jobs(c.Query("q")))
}

func (h *JobHandler) Board(c *gin.Context) {
	c.JSON(http.StatusOK, h.JobService.Board())
}

func (h *JobHandler) GetJob(c *gin.Context) {
	job, ok := h.Store.Job(c.Param("id"))
	if !ok {
		respondError(c, apperrors.NotFound("job "+c.Param("id"), nil))
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob is POST /jobs. New postings wait for admin approval.
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.JobPostingRequest
	if !bindJSON(c, &req) {
		return
	}
	job, err := h.JobService.PostJob(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) ReviewJob(c *gin.Context) {
	var req dtos.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.JobService.ReviewJob(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, http.StatusOK, out, nil)
}

func (h *JobHandler) Apply(c *gin.Context) {
	var req dtos.JobApplicationRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.JobService.Apply(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, http.StatusOK, out, nil)
}

func (h *JobHandler) SavedJobs(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.SavedJobs())
}

// ToggleSaved saves the job, or unsaves it when it is already saved.
func (h *JobHandler) ToggleSaved(c *gin.Context) {
	if err := h.Store.ToggleSaveJob(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved_job_ids": h.Store.SavedJobIDs()})
}

func (h *JobHandler) GetCriteria(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.SearchCriteria())
}

func (h *JobHandler) SetCriteria(c *gin.Context) {
	var req dtos.SearchCriteriaRequest
	if !bindJSON(c, &req) {
		return
	}
	h.Store.SetSearchCriteria(req.ToCriteria())
	c.JSON(http.StatusOK, h.Store.SearchCriteria())
}

func (h *JobHandler) ClearCriteria(c *gin.Context) {
	h.Store.ClearSearchCriteria()
	c.Status(http.StatusNoContent)
}

func (h *JobHandler) ListCandidates(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Candidates())
}

// MatchCandidates is GET /candidates/match?skills=a,b.
func (h *JobHandler) MatchCandidates(c *gin.Context) {
	skills := dtos.SplitList(c.Query("skills"))
	if len(skills) == 0 {
		respondError(c, apperrors.InvalidInput("skills query parameter is required", nil))
		return
	}
	c.JSON(http.StatusOK, h.Matcher.MatchCandidates(h.Store.Candidates(), skills))
}

func (h *JobHandler) ListCorporates(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Corporates())
}

func (h *JobHandler) ReviewCorporate(c *gin.Context) {
	var req dtos.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.JobService.ReviewCorporate(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, http.StatusOK, out, nil)
}

func (h *JobHandler) ListApprovals(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Approvals())
}

func (h *JobHandler) ReviewApproval(c *gin.Context) {
	var req dtos.ReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	out, err := h.JobService.ReviewApproval(c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOutcome(c, http.StatusOK, out, nil)
}
