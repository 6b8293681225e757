package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/model"
	"github.com/lshigami/quizdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	topicCodeLength   = 6
	topicCodeAttempts = 5
)

type TopicService interface {
	CreateTopic(req dto.TopicCreateDTO) (*dto.TopicResponse, error)
	GetTopic(id uint) (*dto.TopicResponse, error)
	GetTopicByCode(code string) (*dto.TopicResponse, error)
	GetAllTopics() ([]dto.TopicResponse, error)
	UpdateTopic(id uint, req dto.TopicUpdateDTO) (*dto.TopicResponse, error)
	DeleteTopic(id uint) error
}

type topicService struct {
	topicRepo repository.TopicRepository
	newCode   func() string
}

func NewTopicService(topicRepo repository.TopicRepository) TopicService {
	return &topicService{topicRepo: topicRepo, newCode: generateTopicCode}
}

// generateTopicCode returns six upper-case hex characters.
func generateTopicCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:topicCodeLength]
}

func normalizeTopicCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *topicService) CreateTopic(req dto.TopicCreateDTO) (*dto.TopicResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationErrorf("title is required")
	}
	if err := s.ensureTitleFree(title, 0); err != nil {
		return nil, err
	}

	code, err := s.uniqueCode()
	if err != nil {
		return nil, err
	}

	topic := model.Topic{Code: code, Title: title}
	if err := s.topicRepo.Create(&topic); err != nil {
		log.Error().Err(err).Str("title", title).Msg("Failed to create topic")
		return nil, repoError(err, "create topic")
	}
	log.Info().Uint("topicID", topic.ID).Str("code", topic.Code).Msg("Topic created")

	var resp dto.TopicResponse
	if err := copier.Copy(&resp, &topic); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *topicService) uniqueCode() (string, error) {
	for i := 0; i < topicCodeAttempts; i++ {
		code := s.newCode()
		_, err := s.topicRepo.FindByCode(code)
		if err != nil {
			if isNotFound(err) {
				return code, nil
			}
			return "", repoError(err, "check topic code")
		}
		log.Debug().Str("code", code).Msg("Topic code collision, retrying")
	}
	return "", fmt.Errorf("could not generate a unique topic code after %d attempts", topicCodeAttempts)
}

// ensureTitleFree rejects a title used by any topic other than exceptID.
func (s *topicService) ensureTitleFree(title string, exceptID uint) error {
	existing, err := s.topicRepo.FindByTitle(title)
	if err == nil && existing.ID != exceptID {
		return fmt.Errorf("topic with title %q: %w", title, ErrConflict)
	}
	if err != nil && !isNotFound(err) {
		return repoError(err, "check topic title")
	}
	return nil
}

func (s *topicService) GetTopic(id uint) (*dto.TopicResponse, error) {
	topic, err := s.topicRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, repoError(err, fmt.Sprintf("topic %d", id))
	}
	return topicResponse(topic, len(topic.Questions)), nil
}

func (s *topicService) GetTopicByCode(code string) (*dto.TopicResponse, error) {
	topic, err := s.topicRepo.FindByCode(normalizeTopicCode(code))
	if err != nil {
		return nil, repoError(err, fmt.Sprintf("topic with code %q", code))
	}
	withQuestions, err := s.topicRepo.FindByIDWithQuestions(topic.ID)
	if err != nil {
		return nil, repoError(err, fmt.Sprintf("topic %d", topic.ID))
	}
	return topicResponse(withQuestions, len(withQuestions.Questions)), nil
}

func (s *topicService) GetAllTopics() ([]dto.TopicResponse, error) {
	topics, err := s.topicRepo.FindAllWithQuestionCount()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list topics")
		return nil, repoError(err, "list topics")
	}
	resp := make([]dto.TopicResponse, 0, len(topics))
	for i := range topics {
		resp = append(resp, *topicResponse(&topics[i].Topic, topics[i].QuestionCount))
	}
	return resp, nil
}

func (s *topicService) UpdateTopic(id uint, req dto.TopicUpdateDTO) (*dto.TopicResponse, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationErrorf("title is required")
	}
	topic, err := s.topicRepo.FindByIDWithQuestions(id)
	if err != nil {
		return nil, repoError(err, fmt.Sprintf("topic %d", id))
	}
	if err := s.ensureTitleFree(title, id); err != nil {
		return nil, err
	}

	questionCount := len(topic.Questions)
	topic.Title = title
	topic.Questions = nil
	if err := s.topicRepo.Update(topic); err != nil {
		log.Error().Err(err).Uint("topicID", id).Msg("Failed to update topic")
		return nil, repoError(err, "update topic")
	}
	return topicResponse(topic, questionCount), nil
}

func (s *topicService) DeleteTopic(id uint) error {
	if err := s.topicRepo.DeleteCascade(id); err != nil {
		log.Error().Err(err).Uint("topicID", id).Msg("Failed to delete topic")
		return repoError(err, fmt.Sprintf("delete topic %d", id))
	}
	log.Info().Uint("topicID", id).Msg("Topic deleted with its questions and submissions")
	return nil
}

func topicResponse(topic *model.Topic, questionCount int) *dto.TopicResponse {
	return &dto.TopicResponse{
		ID:            topic.ID,
		Code:          topic.Code,
		Title:         topic.Title,
		QuestionCount: questionCount,
		CreatedAt:     topic.CreatedAt,
		UpdatedAt:     topic.UpdatedAt,
	}
}
