package model

// Answer is one graded answer inside a Submission. IsCorrect is computed at
// submission time and kept even if the question is edited later.
type Answer struct {
	ID           uint    `gorm:"primarykey" json:"id"`
	SubmissionID uint    `json:"submission_id" gorm:"not null;index"`
	QuestionID   uint    `json:"question_id" gorm:"not null;index"`
	Position     int     `json:"position" gorm:"not null"`
	ChoiceIndex  *int    `json:"choice_index,omitempty"`
	TextAnswer   *string `json:"text_answer,omitempty" gorm:"type:text"`
	RawAnswer    string  `json:"raw_answer" gorm:"type:text"`
	IsCorrect    bool    `json:"is_correct" gorm:"not null"`
}

func (Answer) TableName() string {
	return "submission_answers"
}
