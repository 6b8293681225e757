package service

import (
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/model"
	"github.com/lshigami/quizdesk/internal/quiz"
	"github.com/lshigami/quizdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

const minChoiceOptions = 2

type QuestionService interface {
	CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	GetPublicQuestion(id uint) (*dto.PublicQuestionResponse, error)
	GetAllQuestions(topicID *uint) ([]dto.QuestionResponse, error)
	GetPublicQuestions(topicID *uint) ([]dto.PublicQuestionResponse, error)
	UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	repo      repository.QuestionRepository
	topicRepo repository.TopicRepository
}

func NewQuestionService(repo repository.QuestionRepository, topicRepo repository.TopicRepository) QuestionService {
	return &questionService{repo: repo, topicRepo: topicRepo}
}

// questionBody holds the type-dependent fields of a question after
// validation. Only the pair belonging to Type is set.
type questionBody struct {
	Type          quiz.QuestionType
	Prompt        string
	Options       []string
	CorrectIndex  *int
	CorrectAnswer *string
}

// validateQuestion checks a question against its type: choice questions need
// at least two non-empty options and a correct index inside them, text
// questions need a non-empty correct answer. Fields of the other type are
// dropped.
func validateQuestion(qType, prompt string, options []string, correctIndex *int, correctAnswer *string) (*questionBody, error) {
	t := quiz.QuestionType(strings.TrimSpace(qType))
	if !t.Valid() {
		return nil, validationErrorf("type must be either %q or %q", quiz.TypeChoice, quiz.TypeText)
	}
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, validationErrorf("prompt is required")
	}

	body := &questionBody{Type: t, Prompt: prompt}
	switch t {
	case quiz.TypeChoice:
		if len(options) < minChoiceOptions {
			return nil, validationErrorf("choice questions require at least %d options", minChoiceOptions)
		}
		cleaned := make([]string, len(options))
		for i, o := range options {
			cleaned[i] = strings.TrimSpace(o)
			if cleaned[i] == "" {
				return nil, validationErrorf("option %d is empty", i)
			}
		}
		if correctIndex == nil || *correctIndex < 0 || *correctIndex >= len(cleaned) {
			return nil, validationErrorf("correct_index must reference one of the %d options", len(cleaned))
		}
		idx := *correctIndex
		body.Options = cleaned
		body.CorrectIndex = &idx
	case quiz.TypeText:
		if correctAnswer == nil || strings.TrimSpace(*correctAnswer) == "" {
			return nil, validationErrorf("text questions require correct_answer")
		}
		answer := strings.TrimSpace(*correctAnswer)
		body.CorrectAnswer = &answer
	}
	return body, nil
}

func (b *questionBody) applyTo(q *model.Question) {
	q.Type = b.Type
	q.Prompt = b.Prompt
	q.Options = b.Options
	q.CorrectIndex = b.CorrectIndex
	q.CorrectAnswer = b.CorrectAnswer
}

func (s *questionService) CreateQuestion(req dto.QuestionCreateDTO) (*dto.QuestionResponse, error) {
	body, err := validateQuestion(req.Type, req.Prompt, req.Options, req.CorrectIndex, req.CorrectAnswer)
	if err != nil {
		return nil, err
	}
	if _, err := s.topicRepo.FindByID(req.TopicID); err != nil {
		log.Warn().Err(err).Uint("topicID", req.TopicID).Msg("Invalid TopicID provided for question creation")
		return nil, repoError(err, fmt.Sprintf("topic %d", req.TopicID))
	}

	question := model.Question{TopicID: req.TopicID, Order: req.Order}
	body.applyTo(&question)

	if err := s.repo.Create(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question in service")
		return nil, repoError(err, "create question")
	}
	return questionResponse(&question)
}

func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, repoError(err, fmt.Sprintf("question %d", id))
	}
	return questionResponse(question)
}

func (s *questionService) GetPublicQuestion(id uint) (*dto.PublicQuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, repoError(err, fmt.Sprintf("question %d", id))
	}
	var resp dto.PublicQuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}

func (s *questionService) findQuestions(topicID *uint) ([]model.Question, error) {
	var questions []model.Question
	var err error
	if topicID != nil {
		questions, err = s.repo.FindByTopicID(*topicID)
	} else {
		questions, err = s.repo.FindAll()
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to list questions")
		return nil, repoError(err, "list questions")
	}
	return questions, nil
}

func (s *questionService) GetAllQuestions(topicID *uint) ([]dto.QuestionResponse, error) {
	questions, err := s.findQuestions(topicID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionResponse, 0, len(questions))
	if err := copier.Copy(&resp, &questions); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return resp, nil
}

func (s *questionService) GetPublicQuestions(topicID *uint) ([]dto.PublicQuestionResponse, error) {
	questions, err := s.findQuestions(topicID)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.PublicQuestionResponse, 0, len(questions))
	if err := copier.Copy(&resp, &questions); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return resp, nil
}

// UpdateQuestion replaces the question's content. Stored submissions keep the
// verdicts they were graded with.
func (s *questionService) UpdateQuestion(id uint, req dto.QuestionUpdateDTO) (*dto.QuestionResponse, error) {
	body, err := validateQuestion(req.Type, req.Prompt, req.Options, req.CorrectIndex, req.CorrectAnswer)
	if err != nil {
		return nil, err
	}
	question, err := s.repo.FindByID(id)
	if err != nil {
		return nil, repoError(err, fmt.Sprintf("question %d", id))
	}

	if question.Type != body.Type {
		log.Info().Uint("questionID", id).Str("from", string(question.Type)).Str("to", string(body.Type)).Msg("Question type changed")
	}
	body.applyTo(question)
	if req.Order > 0 {
		question.Order = req.Order
	}

	if err := s.repo.Update(question); err != nil {
		log.Error().Err(err).Uint("questionID", id).Msg("Failed to update question")
		return nil, repoError(err, "update question")
	}
	return questionResponse(question)
}

func (s *questionService) DeleteQuestion(id uint) error {
	if err := s.repo.Delete(id); err != nil {
		return repoError(err, fmt.Sprintf("delete question %d", id))
	}
	return nil
}

func questionResponse(q *model.Question) (*dto.QuestionResponse, error) {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, q); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
