package model

import (
	"time"

	"github.com/lshigami/quizdesk/internal/quiz"
)

type Question struct {
	ID            uint              `gorm:"primarykey" json:"id"`
	TopicID       uint              `json:"topic_id" gorm:"not null;index"`
	Type          quiz.QuestionType `json:"type" gorm:"type:varchar(16);not null"` // "choice", "text"
	Order         int               `json:"order" gorm:"column:order_in_topic;not null"`
	Prompt        string            `json:"prompt" gorm:"type:text;not null"`
	Options       []string          `json:"options,omitempty" gorm:"serializer:json"`
	CorrectIndex  *int              `json:"correct_index,omitempty"`
	CorrectAnswer *string           `json:"correct_answer,omitempty" gorm:"type:text"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Gradable returns the view of q used by the grading core.
func (q Question) Gradable() quiz.Question {
	return quiz.Question{
		ID:            q.ID,
		Type:          q.Type,
		Options:       q.Options,
		CorrectIndex:  q.CorrectIndex,
		CorrectAnswer: q.CorrectAnswer,
	}
}
