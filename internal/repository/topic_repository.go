package repository

import (
	"github.com/lshigami/quizdesk/internal/model"
	"gorm.io/gorm"
)

type TopicWithQuestionCount struct {
	model.Topic
	QuestionCount int
}

type TopicRepository interface {
	Create(topic *model.Topic) error
	FindByID(id uint) (*model.Topic, error)
	FindByCode(code string) (*model.Topic, error)
	FindByTitle(title string) (*model.Topic, error)
	FindByIDWithQuestions(id uint) (*model.Topic, error)
	FindAllWithQuestionCount() ([]TopicWithQuestionCount, error)
	Update(topic *model.Topic) error
	// DeleteCascade removes the topic together with its questions and submissions.
	DeleteCascade(id uint) error
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) Create(topic *model.Topic) error {
	return r.db.Create(topic).Error
}

func (r *topicRepository) FindByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.First(&topic, id).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) FindByCode(code string) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.Where("code = ?", code).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) FindByTitle(title string) (*model.Topic, error) {
	var topic model.Topic
	if err := r.db.Where("title = ?", title).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) FindByIDWithQuestions(id uint) (*model.Topic, error) {
	var topic model.Topic
	err := r.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.order_in_topic ASC, questions.id ASC")
	}).First(&topic, id).Error
	if err != nil {
		return nil, err
	}
	return &topic, nil
}

func (r *topicRepository) FindAllWithQuestionCount() ([]TopicWithQuestionCount, error) {
	var results []TopicWithQuestionCount
	err := r.db.Model(&model.Topic{}).
		Select("topics.*, (SELECT COUNT(*) FROM questions WHERE questions.topic_id = topics.id) as question_count").
		Order("topics.created_at DESC").
		Scan(&results).Error
	return results, err
}

func (r *topicRepository) Update(topic *model.Topic) error {
	return r.db.Save(topic).Error
}

func (r *topicRepository) DeleteCascade(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		subQuery := tx.Model(&model.Submission{}).Select("id").Where("topic_id = ?", id)
		if err := tx.Where("submission_id IN (?)", subQuery).Delete(&model.Answer{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id = ?", id).Delete(&model.Submission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("topic_id = ?", id).Delete(&model.Question{}).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Topic{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
