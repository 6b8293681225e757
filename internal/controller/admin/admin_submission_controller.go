package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/internal/controller"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/service"
)

type AdminSubmissionController struct {
	submissionService service.SubmissionService
	statsService      service.StatsService
}

func NewAdminSubmissionController(submissionService service.SubmissionService, statsService service.StatsService) *AdminSubmissionController {
	return &AdminSubmissionController{submissionService: submissionService, statsService: statsService}
}

// GetAllSubmissions godoc
// @Summary (Admin) List submissions
// @Description Newest first, optionally for one topic.
// @Tags Admin - Submissions
// @Produce json
// @Security BearerAuth
// @Param topic_id query int false "Only submissions for this topic"
// @Success 200 {array} dto.SubmissionSummaryResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid topic_id"
// @Router /admin/submissions [get]
func (c *AdminSubmissionController) GetAllSubmissions(ctx *gin.Context) {
	topicID, ok := controller.ParseOptionalIDQuery(ctx, "topic_id")
	if !ok {
		return
	}
	submissions, err := c.submissionService.GetAllSubmissions(topicID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve submissions")
		return
	}
	ctx.JSON(http.StatusOK, submissions)
}

// GetSubmission godoc
// @Summary (Admin) Get a submission with its answers
// @Tags Admin - Submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /admin/submissions/{id} [get]
func (c *AdminSubmissionController) GetSubmission(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Submission")
	if !ok {
		return
	}
	submission, err := c.submissionService.GetSubmission(id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve submission")
		return
	}
	ctx.JSON(http.StatusOK, submission)
}

// DeleteSubmission godoc
// @Summary (Admin) Delete a submission
// @Tags Admin - Submissions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /admin/submissions/{id} [delete]
func (c *AdminSubmissionController) DeleteSubmission(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Submission")
	if !ok {
		return
	}
	if err := c.submissionService.DeleteSubmission(id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete submission")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Submission deleted successfully"})
}

// GetDashboardStats godoc
// @Summary (Admin) Dashboard statistics
// @Description Topic, question and submission counts plus the five latest submissions.
// @Tags Admin - Submissions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.StatsResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/dashboard/stats [get]
func (c *AdminSubmissionController) GetDashboardStats(ctx *gin.Context) {
	stats, err := c.statsService.GetDashboardStats()
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load dashboard statistics")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
