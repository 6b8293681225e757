package dto

// QuizQuestionDTO is a question as shown to a student. For choice questions
// Options are in display order and OptionOrder[k] is the canonical index of
// Options[k]; clients echo OptionOrder back with the answer.
type QuizQuestionDTO struct {
	ID          uint     `json:"id"`
	Type        string   `json:"type"`
	Prompt      string   `json:"prompt"`
	Options     []string `json:"options,omitempty"`
	OptionOrder []int    `json:"option_order,omitempty"`
}

// QuizViewDTO is one freshly shuffled quiz session for a topic.
type QuizViewDTO struct {
	TopicID   uint              `json:"topic_id"`
	Code      string            `json:"code"`
	Title     string            `json:"title"`
	Questions []QuizQuestionDTO `json:"questions"`
}
