package model

import (
	"time"
)

type Topic struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Code      string     `json:"code" gorm:"size:6;not null;uniqueIndex"` // shared with students, e.g. "A1B2C3"
	Title     string     `json:"title" gorm:"not null;uniqueIndex"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE;"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
