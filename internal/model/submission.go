package model

import (
	"time"
)

// Submission is written once when a student finishes a quiz and is never
// updated afterwards, only deleted.
type Submission struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	TopicID     uint      `json:"topic_id" gorm:"not null;index"`
	Topic       Topic     `json:"topic,omitempty" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE;"`
	FullName    string    `json:"full_name" gorm:"not null"`
	Group       string    `json:"group" gorm:"column:group_name;not null"`
	SubmittedAt time.Time `json:"submitted_at" gorm:"autoCreateTime;index"`
	TotalScore  int       `json:"total_score" gorm:"not null"`
	MaxScore    int       `json:"max_score" gorm:"not null"`
	Answers     []Answer  `json:"answers,omitempty" gorm:"foreignKey:SubmissionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
