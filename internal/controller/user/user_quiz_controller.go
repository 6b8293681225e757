package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/internal/controller"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/service"
	"github.com/rs/zerolog/log"
)

type UserQuizController struct {
	quizService       service.QuizService
	submissionService service.SubmissionService
}

func NewUserQuizController(qs service.QuizService, ss service.SubmissionService) *UserQuizController {
	return &UserQuizController{
		quizService:       qs,
		submissionService: ss,
	}
}

// GetQuiz godoc
// @Summary (User) Start a quiz
// @Description Returns the topic's questions in a fresh random order, without answers. Choice options are shuffled and option_order maps each displayed position back to the original option index; send it back with the answer.
// @Tags User - Quiz
// @Produce json
// @Param code path string true "Topic code (case-insensitive)"
// @Success 200 {object} dto.QuizViewDTO
// @Failure 400 {object} dto.ErrorResponse "Invalid code"
// @Failure 404 {object} dto.ErrorResponse "Topic not found or has no questions"
// @Router /quiz/{code} [get]
func (c *UserQuizController) GetQuiz(ctx *gin.Context) {
	quiz, err := c.quizService.GetQuizByCode(ctx.Param("code"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to load quiz")
		return
	}
	ctx.JSON(http.StatusOK, quiz)
}

// SubmitQuiz godoc
// @Summary (User) Submit answers
// @Description Grades the answers against the topic's questions and stores the result. Choice answers are the displayed option position, text answers a string.
// @Tags User - Quiz
// @Accept json
// @Produce json
// @Param submission body dto.SubmissionCreateDTO true "Student identity and answers"
// @Success 201 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Topic or question not found"
// @Failure 429 {object} dto.ErrorResponse "Too many submissions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /submissions [post]
func (c *UserQuizController) SubmitQuiz(ctx *gin.Context) {
	var req dto.SubmissionCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	result, err := c.submissionService.SubmitQuiz(req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to submit answers")
		return
	}
	log.Info().Uint("submissionID", result.ID).Uint("topicID", result.TopicID).Msg("User SubmitQuiz: submission stored")
	ctx.JSON(http.StatusCreated, result)
}

// GetSubmissionResult godoc
// @Summary (User) Get a graded submission
// @Tags User - Quiz
// @Produce json
// @Param id path int true "Submission ID"
// @Success 200 {object} dto.SubmissionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Submission ID format"
// @Failure 404 {object} dto.ErrorResponse "Submission not found"
// @Router /submissions/{id} [get]
func (c *UserQuizController) GetSubmissionResult(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Submission")
	if !ok {
		return
	}
	result, err := c.submissionService.GetSubmission(id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve submission")
		return
	}
	ctx.JSON(http.StatusOK, result)
}
