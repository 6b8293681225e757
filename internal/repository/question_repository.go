package repository

import (
	"github.com/lshigami/quizdesk/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestionRepository interface {
	// Create adds the question to its topic. The topic must exist; an Order
	// of zero or less places the question after the topic's last one.
	Create(question *model.Question) error
	FindByID(id uint) (*model.Question, error)
	FindAll() ([]model.Question, error)
	FindByTopicID(topicID uint) ([]model.Question, error)
	// Update rewrites the question's content. Its topic never changes.
	Update(question *model.Question) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.Question) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var topic model.Topic
		if err := tx.Clauses(clause.Locking{Strength: "SHARE"}).Select("id").First(&topic, question.TopicID).Error; err != nil {
			return err
		}
		if question.Order <= 0 {
			var last int
			err := tx.Model(&model.Question{}).
				Where("topic_id = ?", question.TopicID).
				Select("COALESCE(MAX(order_in_topic), 0)").
				Scan(&last).Error
			if err != nil {
				return err
			}
			question.Order = NextOrder(last)
		}
		return tx.Create(question).Error
	})
}

// NextOrder is the position after last within a topic.
func NextOrder(last int) int {
	if last < 0 {
		return 1
	}
	return last + 1
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("topic_id ASC, order_in_topic ASC, id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByTopicID(topicID uint) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("topic_id = ?", topicID).Order("order_in_topic ASC, id ASC").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

// Every content column is written, so clearing the fields of the other
// question type (options/correct index vs. correct answer) is persisted as NULL.
func (r *questionRepository) Update(question *model.Question) error {
	res := r.db.Model(&model.Question{ID: question.ID}).
		Select("type", "prompt", "order_in_topic", "options", "correct_index", "correct_answer", "updated_at").
		Updates(question)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *questionRepository) Delete(id uint) error {
	res := r.db.Delete(&model.Question{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
