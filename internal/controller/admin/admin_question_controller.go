package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/internal/controller"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/service"
)

type AdminQuestionController struct {
	questionService service.QuestionService
}

func NewAdminQuestionController(questionService service.QuestionService) *AdminQuestionController {
	return &AdminQuestionController{questionService: questionService}
}

// CreateQuestion godoc
// @Summary (Admin) Create a question
// @Description "choice" questions need options (at least 2) and correct_index; "text" questions need correct_answer. An order of 0 places the question after the topic's last one.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param question body dto.QuestionCreateDTO true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	question, err := c.questionService.CreateQuestion(req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create question")
		return
	}
	ctx.JSON(http.StatusCreated, question)
}

// GetAllQuestions godoc
// @Summary (Admin) List questions with answers
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param topic_id query int false "Only questions of this topic"
// @Success 200 {array} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid topic_id"
// @Router /admin/questions [get]
func (c *AdminQuestionController) GetAllQuestions(ctx *gin.Context) {
	topicID, ok := controller.ParseOptionalIDQuery(ctx, "topic_id")
	if !ok {
		return
	}
	questions, err := c.questionService.GetAllQuestions(topicID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve questions")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary (Admin) Get a question with its answer
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [get]
func (c *AdminQuestionController) GetQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Question")
	if !ok {
		return
	}
	question, err := c.questionService.GetQuestion(id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve question")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// UpdateQuestion godoc
// @Summary (Admin) Update a question
// @Description Replaces the question content. Changing the type clears the previous type's fields. Past submissions are not re-graded.
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Param question body dto.QuestionUpdateDTO true "Question data"
// @Success 200 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [put]
func (c *AdminQuestionController) UpdateQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Question")
	if !ok {
		return
	}
	var req dto.QuestionUpdateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	question, err := c.questionService.UpdateQuestion(id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update question")
		return
	}
	ctx.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary (Admin) Delete a question
// @Tags Admin - Questions
// @Produce json
// @Security BearerAuth
// @Param id path int true "Question ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /admin/questions/{id} [delete]
func (c *AdminQuestionController) DeleteQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Question")
	if !ok {
		return
	}
	if err := c.questionService.DeleteQuestion(id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete question")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Question deleted successfully"})
}
