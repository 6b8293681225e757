package service

import (
	"fmt"

	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/quiz"
	"github.com/lshigami/quizdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuizService builds the student view of a topic.
type QuizService interface {
	GetQuizByCode(code string) (*dto.QuizViewDTO, error)
}

type quizService struct {
	topicRepo repository.TopicRepository
}

func NewQuizService(topicRepo repository.TopicRepository) QuizService {
	return &quizService{topicRepo: topicRepo}
}

// GetQuizByCode returns the topic's questions in a fresh random order, with
// the options of choice questions shuffled as well. Correct answers are never
// included. The option orders are not stored; the client sends them back with
// its answers.
func (s *quizService) GetQuizByCode(code string) (*dto.QuizViewDTO, error) {
	topic, err := s.topicRepo.FindByCode(normalizeTopicCode(code))
	if err != nil {
		return nil, repoError(err, fmt.Sprintf("topic with code %q", code))
	}
	withQuestions, err := s.topicRepo.FindByIDWithQuestions(topic.ID)
	if err != nil {
		log.Error().Err(err).Uint("topicID", topic.ID).Msg("Failed to load quiz questions")
		return nil, repoError(err, fmt.Sprintf("topic %d", topic.ID))
	}
	if len(withQuestions.Questions) == 0 {
		return nil, fmt.Errorf("topic %q has no questions: %w", topic.Code, ErrNotFound)
	}

	view := &dto.QuizViewDTO{
		TopicID:   topic.ID,
		Code:      topic.Code,
		Title:     topic.Title,
		Questions: make([]dto.QuizQuestionDTO, 0, len(withQuestions.Questions)),
	}
	for _, q := range quiz.Shuffle(withQuestions.Questions) {
		item := dto.QuizQuestionDTO{ID: q.ID, Type: string(q.Type), Prompt: q.Prompt}
		if q.Type == quiz.TypeChoice {
			p := quiz.PresentOptions(q.Options)
			item.Options = p.Options
			item.OptionOrder = p.Order
		}
		view.Questions = append(view.Questions, item)
	}
	return view, nil
}
