package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/model"
	"github.com/lshigami/quizdesk/internal/monitoring"
	"github.com/lshigami/quizdesk/internal/quiz"
	"github.com/lshigami/quizdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// SubmissionService grades and stores completed quizzes.
type SubmissionService interface {
	SubmitQuiz(req dto.SubmissionCreateDTO) (*dto.SubmissionResponse, error)
	GetSubmission(id uint) (*dto.SubmissionResponse, error)
	GetAllSubmissions(topicID *uint) ([]dto.SubmissionSummaryResponse, error)
	DeleteSubmission(id uint) error
}

type submissionService struct {
	topicRepo      repository.TopicRepository
	submissionRepo repository.SubmissionRepository
	scoreConverter ScoreConverterService
	weight         int
}

func NewSubmissionService(
	topicRepo repository.TopicRepository,
	submissionRepo repository.SubmissionRepository,
	scoreConverter ScoreConverterService,
	weight int,
) SubmissionService {
	return &submissionService{
		topicRepo:      topicRepo,
		submissionRepo: submissionRepo,
		scoreConverter: scoreConverter,
		weight:         weight,
	}
}

// SubmitQuiz validates the whole submission, grades it against the topic's
// current questions and stores it with its answers. Nothing is stored unless
// every answer refers to a question of the topic.
func (s *submissionService) SubmitQuiz(req dto.SubmissionCreateDTO) (*dto.SubmissionResponse, error) {
	fullName := strings.TrimSpace(req.FullName)
	group := strings.TrimSpace(req.Group)
	if fullName == "" || group == "" {
		monitoring.ObserveRejectedSubmission("invalid")
		return nil, validationErrorf("full_name and group are required")
	}
	if len(req.Answers) == 0 {
		monitoring.ObserveRejectedSubmission("invalid")
		return nil, validationErrorf("answers must not be empty")
	}

	topic, err := s.topicRepo.FindByIDWithQuestions(req.TopicID)
	if err != nil {
		log.Warn().Err(err).Uint("topicID", req.TopicID).Msg("SubmitQuiz: topic lookup failed")
		return nil, repoError(err, fmt.Sprintf("topic %d", req.TopicID))
	}
	if len(topic.Questions) == 0 {
		monitoring.ObserveRejectedSubmission("no_questions")
		return nil, fmt.Errorf("topic %d has no questions: %w", req.TopicID, ErrNotFound)
	}

	byID := make(map[uint]model.Question, len(topic.Questions))
	gradable := make([]quiz.Question, 0, len(topic.Questions))
	for _, q := range topic.Questions {
		byID[q.ID] = q
		gradable = append(gradable, q.Gradable())
	}

	submitted, err := decodeAnswers(req.Answers, byID)
	if err != nil {
		monitoring.ObserveRejectedSubmission("invalid")
		return nil, err
	}

	result, err := quiz.Score(gradable, submitted, s.weight)
	switch {
	case errors.Is(err, quiz.ErrUnknownQuestion):
		monitoring.ObserveRejectedSubmission("unknown_question")
		log.Warn().Err(err).Uint("topicID", req.TopicID).Msg("SubmitQuiz: answer for a question outside the topic")
		return nil, fmt.Errorf("topic %d: %w", req.TopicID, err)
	case err != nil:
		monitoring.ObserveRejectedSubmission("invalid")
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	submission := model.Submission{
		TopicID:    topic.ID,
		FullName:   fullName,
		Group:      group,
		TotalScore: result.TotalScore,
		MaxScore:   result.MaxScore,
		Answers:    make([]model.Answer, 0, len(result.Answers)),
	}
	for i, graded := range result.Answers {
		submission.Answers = append(submission.Answers, answerModel(i, graded))
	}

	if err := s.submissionRepo.Create(&submission); err != nil {
		monitoring.ObserveRejectedSubmission("storage_error")
		log.Error().Err(err).Uint("topicID", topic.ID).Msg("SubmitQuiz: failed to store submission")
		return nil, repoError(err, "store submission")
	}
	monitoring.ObserveSubmission(submission.TotalScore, submission.MaxScore)
	log.Info().
		Uint("submissionID", submission.ID).
		Uint("topicID", topic.ID).
		Int("totalScore", submission.TotalScore).
		Int("maxScore", submission.MaxScore).
		Msg("Submission graded and stored")

	submission.Topic = model.Topic{ID: topic.ID, Code: topic.Code, Title: topic.Title}
	return s.submissionResponse(&submission), nil
}

// decodeAnswers turns the loosely typed request answers into responses for
// the scorer. Answers for unknown question ids are passed through so the
// scorer reports them.
func decodeAnswers(answers []dto.SubmittedAnswerDTO, byID map[uint]model.Question) ([]quiz.SubmittedAnswer, error) {
	submitted := make([]quiz.SubmittedAnswer, 0, len(answers))
	for _, a := range answers {
		q, ok := byID[a.QuestionID]
		if !ok {
			submitted = append(submitted, quiz.SubmittedAnswer{QuestionID: a.QuestionID, Response: quiz.MalformedResponse(string(a.Answer))})
			continue
		}

		resp := quiz.DecodeResponse(q.Type, a.Answer)
		if a.OptionOrder != nil && q.Type == quiz.TypeChoice {
			remapped, err := resp.Remap(a.OptionOrder, len(q.Options))
			if err != nil {
				return nil, fmt.Errorf("%w: question %d: %w", ErrValidation, a.QuestionID, err)
			}
			resp = remapped
		}
		submitted = append(submitted, quiz.SubmittedAnswer{QuestionID: a.QuestionID, Response: resp})
	}
	return submitted, nil
}

func answerModel(position int, graded quiz.GradedAnswer) model.Answer {
	answer := model.Answer{
		QuestionID: graded.QuestionID,
		Position:   position,
		RawAnswer:  graded.Response.Raw,
		IsCorrect:  graded.IsCorrect,
	}
	switch graded.Response.Kind {
	case quiz.ResponseChoice:
		idx := graded.Response.Index
		answer.ChoiceIndex = &idx
	case quiz.ResponseText:
		text := graded.Response.Text
		answer.TextAnswer = &text
	}
	return answer
}

func (s *submissionService) GetSubmission(id uint) (*dto.SubmissionResponse, error) {
	submission, err := s.submissionRepo.FindByIDWithDetails(id)
	if err != nil {
		return nil, repoError(err, fmt.Sprintf("submission %d", id))
	}
	return s.submissionResponse(submission), nil
}

func (s *submissionService) GetAllSubmissions(topicID *uint) ([]dto.SubmissionSummaryResponse, error) {
	submissions, err := s.submissionRepo.FindAll(topicID)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list submissions")
		return nil, repoError(err, "list submissions")
	}
	resp := make([]dto.SubmissionSummaryResponse, 0, len(submissions))
	for _, sub := range submissions {
		resp = append(resp, dto.SubmissionSummaryResponse{
			ID:          sub.ID,
			TopicID:     sub.TopicID,
			TopicTitle:  sub.Topic.Title,
			FullName:    sub.FullName,
			Group:       sub.Group,
			SubmittedAt: sub.SubmittedAt,
			TotalScore:  sub.TotalScore,
			MaxScore:    sub.MaxScore,
			Percentage:  s.scoreConverter.Percentage(sub.TotalScore, sub.MaxScore),
		})
	}
	return resp, nil
}

func (s *submissionService) DeleteSubmission(id uint) error {
	if err := s.submissionRepo.Delete(id); err != nil {
		return repoError(err, fmt.Sprintf("delete submission %d", id))
	}
	log.Info().Uint("submissionID", id).Msg("Submission deleted")
	return nil
}

func (s *submissionService) submissionResponse(sub *model.Submission) *dto.SubmissionResponse {
	resp := &dto.SubmissionResponse{
		ID:          sub.ID,
		TopicID:     sub.TopicID,
		TopicTitle:  sub.Topic.Title,
		FullName:    sub.FullName,
		Group:       sub.Group,
		SubmittedAt: sub.SubmittedAt,
		TotalScore:  sub.TotalScore,
		MaxScore:    sub.MaxScore,
		Percentage:  s.scoreConverter.Percentage(sub.TotalScore, sub.MaxScore),
		Answers:     make([]dto.AnswerResponse, 0, len(sub.Answers)),
	}
	for _, a := range sub.Answers {
		if a.IsCorrect {
			resp.CorrectCount++
		}
		resp.Answers = append(resp.Answers, dto.AnswerResponse{
			QuestionID:  a.QuestionID,
			Position:    a.Position,
			ChoiceIndex: a.ChoiceIndex,
			TextAnswer:  a.TextAnswer,
			RawAnswer:   a.RawAnswer,
			IsCorrect:   a.IsCorrect,
		})
	}
	return resp
}
