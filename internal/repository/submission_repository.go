package repository

import (
	"github.com/lshigami/quizdesk/internal/model"
	"gorm.io/gorm"
)

type SubmissionRepository interface {
	// Create inserts the submission and its answers in one transaction.
	Create(submission *model.Submission) error
	FindByIDWithDetails(id uint) (*model.Submission, error)
	FindAll(topicID *uint) ([]model.Submission, error)
	Delete(id uint) error
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(submission *model.Submission) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		// Answers are created through the association.
		return tx.Omit("Topic").Create(submission).Error
	})
}

func (r *submissionRepository) FindByIDWithDetails(id uint) (*model.Submission, error) {
	var submission model.Submission
	err := r.db.
		Preload("Topic").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("submission_answers.position ASC")
		}).
		First(&submission, id).Error
	if err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) FindAll(topicID *uint) ([]model.Submission, error) {
	var submissions []model.Submission
	query := r.db.Preload("Topic")
	if topicID != nil {
		query = query.Where("topic_id = ?", *topicID)
	}
	err := query.Order("submitted_at DESC").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("submission_id = ?", id).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Submission{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
