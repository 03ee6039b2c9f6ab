package v1

import (
	"net/http"

	"go-resume-tracker/internal/delivery/http/response"
	"go-resume-tracker/internal/domain"
	"go-resume-tracker/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

// NewResumeHandler registers resume routes
func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	r.POST("/resumes", handler.UpsertResume)
}

// UpsertResume godoc
// @Summary      Create or update a resume
// @Description  Atomically upserts a resume with its companies, contacts and status history. resumeId 0 creates, a positive resumeId updates.
// @Tags         resumes
// @Accept       json
// @Produce      json
// @Param        body  body      domain.UpsertResumeRequest  true  "Resume data"
// @Success      200   {object}  response.Response{data=domain.UpsertResumeResult}
// @Success      201   {object}  response.Response{data=domain.UpsertResumeResult}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /resumes [post]
// @Security     BearerAuth
func (h *ResumeHandler) UpsertResume(c *gin.Context) {
	var req domain.UpsertResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	// The owner ref is never trusted from the body; it always comes from
	// the authenticated caller.
	req.Ref = c.GetString(string(domain.KeyRef))

	result, err := h.resumeUC.Upsert(c, &req)
	if err != nil {
		c.Error(err)
		return
	}

	if result.Created {
		response.Success(c, http.StatusCreated, "Resume created successfully", result)
		return
	}
	response.Success(c, http.StatusOK, "Resume updated successfully", result)
}
