package repository

import (
	"time"

	"github.com/lshigami/quizdesk/internal/model"
	"gorm.io/gorm"
)

type QuestionTypeCount struct {
	Type  string
	Count int64
}

type RecentSubmission struct {
	ID          uint
	TopicID     uint
	TopicTitle  string
	FullName    string
	Group       string `gorm:"column:group_name"`
	SubmittedAt time.Time
	TotalScore  int
	MaxScore    int
}

type StatsRepository interface {
	CountTopics() (int64, error)
	CountQuestionsByType() ([]QuestionTypeCount, error)
	CountSubmissions() (int64, error)
	RecentSubmissions(limit int) ([]RecentSubmission, error)
	Ping() error
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) CountTopics() (int64, error) {
	var n int64
	err := r.db.Model(&model.Topic{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountQuestionsByType() ([]QuestionTypeCount, error) {
	var rows []QuestionTypeCount
	err := r.db.Model(&model.Question{}).
		Select("type, COUNT(*) as count").
		Group("type").
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) CountSubmissions() (int64, error) {
	var n int64
	err := r.db.Model(&model.Submission{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) RecentSubmissions(limit int) ([]RecentSubmission, error) {
	var rows []RecentSubmission
	err := r.db.Model(&model.Submission{}).
		Select("submissions.id, submissions.topic_id, topics.title as topic_title, submissions.full_name, " +
			"submissions.group_name, submissions.submitted_at, submissions.total_score, submissions.max_score").
		Joins("LEFT JOIN topics ON topics.id = submissions.topic_id").
		Order("submissions.submitted_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *statsRepository) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
