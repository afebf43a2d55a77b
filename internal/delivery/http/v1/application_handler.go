package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewApplicationHandler registers application routes. The applicant-scoped
// list goes on the gated group; everything else is public.
func NewApplicationHandler(public *gin.RouterGroup, gated *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	applications := public.Group("/applications")
	{
		applications.POST("", handler.SubmitApplication)
		applications.GET("/job/:job_id", handler.ListJobApplications)
		applications.PATCH("/:id", handler.UpdateApplicationStatus)
	}

	gated.GET("/applications", handler.ListMyApplications)
}

// SubmitApplicationRequest is the request payload for creating an application
type SubmitApplicationRequest struct {
	JobID       string `json:"job_id" binding:"required"`
	Applicant   string `json:"applicant" binding:"required,email"`
	ResumeURL   string `json:"resume_url"`
	CoverLetter string `json:"cover_letter"`
}

// SubmitApplication godoc
// @Summary      Submit an application
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitApplicationRequest  true  "Application data"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatErrors(err)))
		return
	}

	app := &domain.Application{
		JobID:     req.JobID,
		Applicant: req.Applicant,
		ResumeURL: req.ResumeURL,
	}
	if req.CoverLetter != "" {
		app.CoverLetter = &req.CoverLetter
	}

	id, err := h.applicationUC.SubmitApplication(c.Request.Context(), app)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted", gin.H{"id": id})
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Tags         applications
// @Produce      json
// @Param        job_id  path      string  true  "Job ID"
// @Success      200     {object}  response.Response{data=[]domain.Application}
// @Router       /applications/job/{job_id} [get]
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	applications, err := h.applicationUC.ListByJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// ListMyApplications godoc
// @Summary      List my applications, enriched
// @Description  Applications for the requested email, each carrying company, title and company_logo from its posting. The email must match the credential.
// @Tags         applications
// @Produce      json
// @Param        email  query     string  true  "Applicant email; must equal the credential's email"
// @Success      200    {object}  response.Response{data=[]domain.Application}
// @Failure      401    {object}  response.Response
// @Failure      403    {object}  response.Response
// @Router       /applications [get]
func (h *ApplicationHandler) ListMyApplications(c *gin.Context) {
	email := c.Query("email")

	applications, err := h.applicationUC.ListForApplicant(c.Request.Context(), email)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applications retrieved", applications)
}

// UpdateStatusRequest is the request payload for updating application status
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateApplicationStatus godoc
// @Summary      Update application status
// @Description  Sets the status field only; no other field can change
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Application ID"
// @Param        body  body      UpdateStatusRequest  true  "Status update"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      404   {object}  response.Response
// @Router       /applications/{id} [patch]
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.FormatErrors(err)))
		return
	}

	if err := h.applicationUC.UpdateApplicationStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application status updated", nil)
}
