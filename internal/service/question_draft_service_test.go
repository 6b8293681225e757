package service

import (
	"context"
	"errors"
	"testing"

	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const draftReply = "```json\n" + `{"questions": [
  {"type": "choice", "prompt": "Capital of Italy?", "options": ["Rome", "Milan"], "correct_index": 0},
  {"type": "choice", "prompt": "Broken", "options": ["only one"], "correct_index": 0},
  {"type": "text", "prompt": "Longest river?", "correct_answer": "Nile"},
  {"type": "choice", "prompt": "Highest mountain?", "options": ["K2", "Everest"], "correct_index": 1}
]}` + "\n```"

func TestQuestionDraftService_Unavailable(t *testing.T) {
	m := newMemStore()
	topic := seedTopic(m, "Geography", "GEO123")
	svc := NewQuestionDraftService(fakeTopicRepo{m}, nil)

	_, err := svc.DraftQuestions(context.Background(), topic.ID, dto.QuestionDraftRequestDTO{Count: 2})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestQuestionDraftService_ParsesAndValidates(t *testing.T) {
	m := newMemStore()
	topic := seedTopic(m, "Geography", "GEO123")
	seedText(m, topic.ID, 1, "Capital of France?", "Paris")
	llm := &fakeGemini{reply: draftReply}
	svc := NewQuestionDraftService(fakeTopicRepo{m}, llm)

	drafts, err := svc.DraftQuestions(context.Background(), topic.ID, dto.QuestionDraftRequestDTO{Count: 5})
	require.NoError(t, err)
	require.Len(t, drafts, 3, "the draft with a single option is dropped")
	assert.Equal(t, "Capital of Italy?", drafts[0].Prompt)
	assert.Equal(t, "Nile", *drafts[1].CorrectAnswer)

	require.Len(t, llm.prompts, 1)
	assert.Contains(t, llm.prompts[0], "Geography")
	assert.Contains(t, llm.prompts[0], "Capital of France?")
}

func TestQuestionDraftService_FiltersTypeAndCount(t *testing.T) {
	m := newMemStore()
	topic := seedTopic(m, "Geography", "GEO123")
	svc := NewQuestionDraftService(fakeTopicRepo{m}, &fakeGemini{reply: draftReply})

	drafts, err := svc.DraftQuestions(context.Background(), topic.ID, dto.QuestionDraftRequestDTO{Count: 1, Type: "choice"})
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "choice", drafts[0].Type)
}

func TestQuestionDraftService_Failures(t *testing.T) {
	m := newMemStore()
	topic := seedTopic(m, "Geography", "GEO123")

	_, err := NewQuestionDraftService(fakeTopicRepo{m}, &fakeGemini{err: errors.New("quota")}).
		DraftQuestions(context.Background(), topic.ID, dto.QuestionDraftRequestDTO{Count: 1})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewQuestionDraftService(fakeTopicRepo{m}, &fakeGemini{reply: "sorry, no"}).
		DraftQuestions(context.Background(), topic.ID, dto.QuestionDraftRequestDTO{Count: 1})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = NewQuestionDraftService(fakeTopicRepo{m}, &fakeGemini{reply: draftReply}).
		DraftQuestions(context.Background(), 999, dto.QuestionDraftRequestDTO{Count: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}
