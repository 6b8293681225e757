package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type TopicResponse struct {
	ID            uint      `json:"id"`
	Code          string    `json:"code"`
	Title         string    `json:"title"`
	QuestionCount int       `json:"question_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// QuestionResponse is the admin view of a question, correct answers included.
type QuestionResponse struct {
	ID            uint      `json:"id"`
	TopicID       uint      `json:"topic_id"`
	Type          string    `json:"type"`
	Order         int       `json:"order"`
	Prompt        string    `json:"prompt"`
	Options       []string  `json:"options,omitempty"`
	CorrectIndex  *int      `json:"correct_index,omitempty"`
	CorrectAnswer *string   `json:"correct_answer,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// PublicQuestionResponse never carries the correct answer.
type PublicQuestionResponse struct {
	ID      uint     `json:"id"`
	TopicID uint     `json:"topic_id"`
	Type    string   `json:"type"`
	Order   int      `json:"order"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options,omitempty"`
}

type AnswerResponse struct {
	QuestionID  uint    `json:"question_id"`
	Position    int     `json:"position"`
	ChoiceIndex *int    `json:"choice_index,omitempty"`
	TextAnswer  *string `json:"text_answer,omitempty"`
	RawAnswer   string  `json:"raw_answer"`
	IsCorrect   bool    `json:"is_correct"`
}

type SubmissionResponse struct {
	ID           uint             `json:"id"`
	TopicID      uint             `json:"topic_id"`
	TopicTitle   string           `json:"topic_title"`
	FullName     string           `json:"full_name"`
	Group        string           `json:"group"`
	SubmittedAt  time.Time        `json:"submitted_at"`
	TotalScore   int              `json:"total_score"`
	MaxScore     int              `json:"max_score"`
	Percentage   int              `json:"percentage"`
	CorrectCount int              `json:"correct_count"`
	Answers      []AnswerResponse `json:"answers,omitempty"`
}

// SubmissionSummaryResponse is used in listings and omits the answers.
type SubmissionSummaryResponse struct {
	ID          uint      `json:"id"`
	TopicID     uint      `json:"topic_id"`
	TopicTitle  string    `json:"topic_title"`
	FullName    string    `json:"full_name"`
	Group       string    `json:"group"`
	SubmittedAt time.Time `json:"submitted_at"`
	TotalScore  int       `json:"total_score"`
	MaxScore    int       `json:"max_score"`
	Percentage  int       `json:"percentage"`
}

type StatsResponse struct {
	Topics            int64                       `json:"topics"`
	Questions         int64                       `json:"questions"`
	ChoiceQuestions   int64                       `json:"choice_questions"`
	TextQuestions     int64                       `json:"text_questions"`
	Submissions       int64                       `json:"submissions"`
	RecentSubmissions []SubmissionSummaryResponse `json:"recent_submissions"`
}

type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
}

// ForgotPasswordResponse carries the reset token only when it could not be
// delivered by other means (debug mode).
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"reset_token,omitempty"`
}

type AdminResponse struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// QuestionDraftResponse is an unsaved question proposed by the LLM.
type QuestionDraftResponse struct {
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectIndex  *int     `json:"correct_index,omitempty"`
	CorrectAnswer *string  `json:"correct_answer,omitempty"`
}
