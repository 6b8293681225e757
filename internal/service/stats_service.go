package service

import (
	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/quiz"
	"github.com/lshigami/quizdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

const recentSubmissionsLimit = 5

type StatsService interface {
	GetDashboardStats() (*dto.StatsResponse, error)
	Health() (*dto.HealthResponse, error)
}

type statsService struct {
	repo           repository.StatsRepository
	scoreConverter ScoreConverterService
}

func NewStatsService(repo repository.StatsRepository, scoreConverter ScoreConverterService) StatsService {
	return &statsService{repo: repo, scoreConverter: scoreConverter}
}

func (s *statsService) GetDashboardStats() (*dto.StatsResponse, error) {
	var resp dto.StatsResponse
	var err error

	if resp.Topics, err = s.repo.CountTopics(); err != nil {
		return nil, repoError(err, "count topics")
	}
	byType, err := s.repo.CountQuestionsByType()
	if err != nil {
		return nil, repoError(err, "count questions")
	}
	for _, row := range byType {
		resp.Questions += row.Count
		switch quiz.QuestionType(row.Type) {
		case quiz.TypeChoice:
			resp.ChoiceQuestions = row.Count
		case quiz.TypeText:
			resp.TextQuestions = row.Count
		}
	}
	if resp.Submissions, err = s.repo.CountSubmissions(); err != nil {
		return nil, repoError(err, "count submissions")
	}

	recent, err := s.repo.RecentSubmissions(recentSubmissionsLimit)
	if err != nil {
		return nil, repoError(err, "recent submissions")
	}
	resp.RecentSubmissions = make([]dto.SubmissionSummaryResponse, 0, len(recent))
	for _, r := range recent {
		resp.RecentSubmissions = append(resp.RecentSubmissions, dto.SubmissionSummaryResponse{
			ID:          r.ID,
			TopicID:     r.TopicID,
			TopicTitle:  r.TopicTitle,
			FullName:    r.FullName,
			Group:       r.Group,
			SubmittedAt: r.SubmittedAt,
			TotalScore:  r.TotalScore,
			MaxScore:    r.MaxScore,
			Percentage:  s.scoreConverter.Percentage(r.TotalScore, r.MaxScore),
		})
	}
	return &resp, nil
}

// Health reports whether the database answers a ping.
func (s *statsService) Health() (*dto.HealthResponse, error) {
	if err := s.repo.Ping(); err != nil {
		log.Error().Err(err).Msg("Database health check failed")
		return &dto.HealthResponse{Status: "unhealthy", Database: "disconnected"}, err
	}
	return &dto.HealthResponse{Status: "healthy", Database: "connected"}, nil
}
