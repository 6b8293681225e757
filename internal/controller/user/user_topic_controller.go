package user

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/internal/controller"
	"github.com/lshigami/quizdesk/internal/service"
)

type UserTopicController struct {
	topicService    service.TopicService
	questionService service.QuestionService
}

func NewUserTopicController(ts service.TopicService, qs service.QuestionService) *UserTopicController {
	return &UserTopicController{
		topicService:    ts,
		questionService: qs,
	}
}

// GetAllTopics godoc
// @Summary (User) List topics
// @Tags User - Topics
// @Produce json
// @Success 200 {array} dto.TopicResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /topics [get]
func (c *UserTopicController) GetAllTopics(ctx *gin.Context) {
	topics, err := c.topicService.GetAllTopics()
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve topics")
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

// GetTopic godoc
// @Summary (User) Get a topic
// @Tags User - Topics
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} dto.TopicResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Topic ID format"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /topics/{id} [get]
func (c *UserTopicController) GetTopic(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Topic")
	if !ok {
		return
	}
	topic, err := c.topicService.GetTopic(id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve topic")
		return
	}
	ctx.JSON(http.StatusOK, topic)
}

// GetTopicByCode godoc
// @Summary (User) Look up a topic by code
// @Tags User - Topics
// @Produce json
// @Param code path string true "Topic code (case-insensitive)"
// @Success 200 {object} dto.TopicResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid code"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /topics/code/{code} [get]
func (c *UserTopicController) GetTopicByCode(ctx *gin.Context) {
	topic, err := c.topicService.GetTopicByCode(ctx.Param("code"))
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve topic")
		return
	}
	ctx.JSON(http.StatusOK, topic)
}

// GetQuestions godoc
// @Summary (User) List questions without answers
// @Tags User - Topics
// @Produce json
// @Param topic_id query int false "Only questions of this topic"
// @Success 200 {array} dto.PublicQuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid topic_id"
// @Router /questions [get]
func (c *UserTopicController) GetQuestions(ctx *gin.Context) {
	topicID, ok := controller.ParseOptionalIDQuery(ctx, "topic_id")
	if !ok {
		return
	}
	questions, err := c.questionService.GetPublicQuestions(topicID)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve questions")
		return
	}
	ctx.JSON(http.StatusOK, questions)
}

// GetQuestion godoc
// @Summary (User) Get a question without its answer
// @Tags User - Topics
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} dto.PublicQuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /questions/{id} [get]
func (c *UserTopicController) GetQuestion(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Question")
	if !ok {
		return
	}
	question, err := c.questionService.GetPublicQuestion(id)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve question")
		return
	}
	ctx.JSON(http.StatusOK, question)
}
