package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/quizdesk/internal/controller"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminTopicController struct {
	topicService service.TopicService
	draftService service.QuestionDraftService
}

func NewAdminTopicController(topicService service.TopicService, draftService service.QuestionDraftService) *AdminTopicController {
	return &AdminTopicController{topicService: topicService, draftService: draftService}
}

// CreateTopic godoc
// @Summary (Admin) Create a topic
// @Description Creates a topic with a unique title. A 6-character code for students is generated.
// @Tags Admin - Topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param topic body dto.TopicCreateDTO true "Topic title"
// @Success 201 {object} dto.TopicResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 409 {object} dto.ErrorResponse "Title already in use"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/topics [post]
func (c *AdminTopicController) CreateTopic(ctx *gin.Context) {
	var req dto.TopicCreateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	topic, err := c.topicService.CreateTopic(req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to create topic")
		return
	}
	log.Info().Uint("topicID", topic.ID).Msg("Admin CreateTopic: topic created")
	ctx.JSON(http.StatusCreated, topic)
}

// GetAllTopics godoc
// @Summary (Admin) List topics
// @Tags Admin - Topics
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.TopicResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/topics [get]
func (c *AdminTopicController) GetAllTopics(ctx *gin.Context) {
	topics, err := c.topicService.GetAllTopics()
	if err != nil {
		controller.RespondError(ctx, err, "Failed to retrieve topics")
		return
	}
	ctx.JSON(http.StatusOK, topics)
}

// GetTopic godoc
// @Summary (Admin) Get a topic
// @Tags Admin - Topics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Success 200 {object} dto.TopicResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Topic ID format"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /admin/topics/{id} [get]
func (c *AdminTopicController) GetTopic(ctx *gin.Context) {
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

// UpdateTopic godoc
// @Summary (Admin) Rename a topic
// @Tags Admin - Topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Param topic body dto.TopicUpdateDTO true "New title"
// @Success 200 {object} dto.TopicResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 409 {object} dto.ErrorResponse "Title already in use"
// @Router /admin/topics/{id} [put]
func (c *AdminTopicController) UpdateTopic(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Topic")
	if !ok {
		return
	}
	var req dto.TopicUpdateDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	topic, err := c.topicService.UpdateTopic(id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to update topic")
		return
	}
	ctx.JSON(http.StatusOK, topic)
}

// DeleteTopic godoc
// @Summary (Admin) Delete a topic
// @Description Deletes the topic together with its questions and submissions.
// @Tags Admin - Topics
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid Topic ID format"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Router /admin/topics/{id} [delete]
func (c *AdminTopicController) DeleteTopic(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Topic")
	if !ok {
		return
	}
	if err := c.topicService.DeleteTopic(id); err != nil {
		controller.RespondError(ctx, err, "Failed to delete topic")
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Topic deleted successfully"})
}

// DraftQuestions godoc
// @Summary (Admin) Draft questions with Gemini
// @Description Asks the LLM for questions on the topic. Drafts are validated but not saved.
// @Tags Admin - Topics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Topic ID"
// @Param request body dto.QuestionDraftRequestDTO true "How many drafts, optional type"
// @Success 200 {array} dto.QuestionDraftResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Topic not found"
// @Failure 503 {object} dto.ErrorResponse "LLM not configured or unusable reply"
// @Router /admin/topics/{id}/question-drafts [post]
func (c *AdminTopicController) DraftQuestions(ctx *gin.Context) {
	id, ok := controller.ParseIDParam(ctx, "id", "Topic")
	if !ok {
		return
	}
	var req dto.QuestionDraftRequestDTO
	if !controller.BindJSON(ctx, &req) {
		return
	}
	drafts, err := c.draftService.DraftQuestions(ctx.Request.Context(), id, req)
	if err != nil {
		controller.RespondError(ctx, err, "Failed to draft questions")
		return
	}
	ctx.JSON(http.StatusOK, drafts)
}
