// Package quiz holds the grading core: per-question grading, submission
// scoring, shuffling and the display-order remapping of choice options.
package quiz

type QuestionType string

const (
	TypeChoice QuestionType = "choice"
	TypeText   QuestionType = "text"
)

func (t QuestionType) Valid() bool {
	return t == TypeChoice || t == TypeText
}

// Question is the minimal view of a stored question needed for grading.
type Question struct {
	ID            uint
	Type          QuestionType
	Options       []string
	CorrectIndex  *int
	CorrectAnswer *string
}
