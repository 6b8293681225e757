package dto

// TopicCreateDTO is used by admins to create a topic. The code is generated.
type TopicCreateDTO struct {
	Title string `json:"title" binding:"required,max=200"`
}

type TopicUpdateDTO struct {
	Title string `json:"title" binding:"required,max=200"`
}

// QuestionCreateDTO carries options/correct_index for "choice" questions and
// correct_answer for "text" questions. The other pair is ignored.
type QuestionCreateDTO struct {
	TopicID       uint     `json:"topic_id" binding:"required"`
	Type          string   `json:"type" binding:"required,oneof=choice text"`
	Prompt        string   `json:"prompt" binding:"required"`
	Order         int      `json:"order" binding:"min=0"`
	Options       []string `json:"options"`
	CorrectIndex  *int     `json:"correct_index"`
	CorrectAnswer *string  `json:"correct_answer"`
}

// QuestionUpdateDTO replaces the editable fields of a question. Changing the
// type clears the fields that belonged to the previous type.
type QuestionUpdateDTO struct {
	Type          string   `json:"type" binding:"required,oneof=choice text"`
	Prompt        string   `json:"prompt" binding:"required"`
	Order         int      `json:"order" binding:"min=0"`
	Options       []string `json:"options"`
	CorrectIndex  *int     `json:"correct_index"`
	CorrectAnswer *string  `json:"correct_answer"`
}

// QuestionDraftRequestDTO asks the LLM for draft questions on a topic.
type QuestionDraftRequestDTO struct {
	Count int    `json:"count" binding:"required,min=1,max=20"`
	Type  string `json:"type" binding:"omitempty,oneof=choice text"`
}
