package dto

import "encoding/json"

// SubmittedAnswerDTO is one answer in a submission. Answer is a number or a
// numeric string for choice questions and a string for text questions. When
// OptionOrder is sent, a choice answer is the displayed position and
// OptionOrder[k] is the canonical index shown at position k.
type SubmittedAnswerDTO struct {
	QuestionID  uint            `json:"question_id" binding:"required"`
	Answer      json.RawMessage `json:"answer" swaggertype:"string"`
	OptionOrder []int           `json:"option_order,omitempty"`
}

type SubmissionCreateDTO struct {
	TopicID  uint                 `json:"topic_id" binding:"required"`
	FullName string               `json:"full_name" binding:"required,max=200"`
	Group    string               `json:"group" binding:"required,max=100"`
	Answers  []SubmittedAnswerDTO `json:"answers" binding:"required,min=1,dive"`
}

type RegisterDTO struct {
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	RegistrationKey string `json:"registration_key" binding:"required"`
}

type LoginDTO struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordDTO struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordDTO struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

type ChangePasswordDTO struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}
