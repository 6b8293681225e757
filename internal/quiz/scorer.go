package quiz

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownQuestion   = errors.New("question does not belong to this topic")
	ErrDuplicateQuestion = errors.New("question answered more than once")
)

type SubmittedAnswer struct {
	QuestionID uint
	Response   Response
}

type GradedAnswer struct {
	QuestionID uint
	Response   Response
	IsCorrect  bool
}

type Result struct {
	TotalScore   int
	MaxScore     int
	CorrectCount int
	Answers      []GradedAnswer
}

// Score grades submitted against the topic's questions. Every answer is
// checked before any grading happens, so a submission either scores fully or
// fails with ErrUnknownQuestion / ErrDuplicateQuestion. Weight values below 1
// are treated as 1.
func Score(questions []Question, submitted []SubmittedAnswer, weight int) (*Result, error) {
	if weight < 1 {
		weight = 1
	}

	byID := make(map[uint]Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	seen := make(map[uint]struct{}, len(submitted))
	for _, s := range submitted {
		if _, ok := byID[s.QuestionID]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownQuestion, s.QuestionID)
		}
		if _, dup := seen[s.QuestionID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateQuestion, s.QuestionID)
		}
		seen[s.QuestionID] = struct{}{}
	}

	res := &Result{
		MaxScore: len(questions) * weight,
		Answers:  make([]GradedAnswer, 0, len(submitted)),
	}
	for _, s := range submitted {
		ok := Grade(byID[s.QuestionID], s.Response)
		if ok {
			res.CorrectCount++
		}
		res.Answers = append(res.Answers, GradedAnswer{
			QuestionID: s.QuestionID,
			Response:   s.Response,
			IsCorrect:  ok,
		})
	}
	res.TotalScore = res.CorrectCount * weight
	return res, nil
}
