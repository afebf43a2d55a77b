package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

// NewJobHandler registers job posting routes
func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.ListJobs)
		jobs.GET("/:id", handler.GetJob)
		jobs.POST("", handler.CreateJob)
	}
}

// ListJobs godoc
// @Summary      List job postings
// @Description  All postings, or only one HR owner's when the email filter is given
// @Tags         jobs
// @Produce      json
// @Param        email  query     string  false  "Filter on hr_email"
// @Success      200    {object}  response.Response{data=[]domain.JobPosting}
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	email := c.Query("email")

	jobs, err := h.jobUC.ListJobs(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Jobs retrieved", jobs)
}

// GetJob godoc
// @Summary      Get one job posting
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.JobPosting}
// @Failure      404  {object}  response.Response
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobUC.GetJobDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job retrieved", job)
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  Persists the submitted listing payload as-is
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        body  body      map[string]interface{}  true  "Listing payload"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Error(apperror.BadRequest("Invalid job payload"))
		return
	}

	job := domain.NewJobPosting(payload)
	id, err := h.jobUC.CreateJob(c.Request.Context(), job)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", gin.H{"id": id})
}
