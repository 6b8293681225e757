package service

import (
	"testing"

	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateQuestion(t *testing.T) {
	tests := []struct {
		name    string
		qType   string
		prompt  string
		options []string
		index   *int
		answer  *string
		wantErr bool
	}{
		{"choice ok", "choice", "Capital?", []string{"Paris", "Rome"}, intPtr(1), nil, false},
		{"unknown type", "essay", "Why?", nil, nil, strPtr("x"), true},
		{"empty prompt", "text", "  ", nil, nil, strPtr("x"), true},
		{"one option", "choice", "Q", []string{"only"}, intPtr(0), nil, true},
		{"blank option", "choice", "Q", []string{"a", " "}, intPtr(0), nil, true},
		{"missing index", "choice", "Q", []string{"a", "b"}, nil, nil, true},
		{"index too large", "choice", "Q", []string{"a", "b"}, intPtr(2), nil, true},
		{"negative index", "choice", "Q", []string{"a", "b"}, intPtr(-1), nil, true},
		{"text ok", "text", "Q", nil, nil, strPtr(" Paris "), false},
		{"text missing answer", "text", "Q", nil, nil, nil, true},
		{"text blank answer", "text", "Q", nil, nil, strPtr("   "), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validateQuestion(tt.qType, tt.prompt, tt.options, tt.index, tt.answer)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateQuestion_DropsOtherTypeFields(t *testing.T) {
	body, err := validateQuestion("text", "Q", []string{"a", "b"}, intPtr(0), strPtr(" Answer "))
	require.NoError(t, err)
	assert.Nil(t, body.Options)
	assert.Nil(t, body.CorrectIndex)
	assert.Equal(t, "Answer", *body.CorrectAnswer)

	body, err = validateQuestion("choice", "Q", []string{" a ", "b"}, intPtr(0), strPtr("ignored"))
	require.NoError(t, err)
	assert.Nil(t, body.CorrectAnswer)
	assert.Equal(t, []string{"a", "b"}, body.Options)
}

func TestQuestionService_CreateRequiresTopic(t *testing.T) {
	m := newMemStore()
	svc := NewQuestionService(fakeQuestionRepo{m}, fakeTopicRepo{m})

	_, err := svc.CreateQuestion(dto.QuestionCreateDTO{TopicID: 42, Type: "text", Prompt: "Q", CorrectAnswer: strPtr("a")})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, m.questions)
}

func TestQuestionService_CreateAppendsToTopicOrder(t *testing.T) {
	m := newMemStore()
	topic := seedTopic(m, "T", "TTTTTT")
	other := seedTopic(m, "U", "UUUUUU")
	svc := NewQuestionService(fakeQuestionRepo{m}, fakeTopicRepo{m})

	create := func(topicID uint, order int) int {
		t.Helper()
		q, err := svc.CreateQuestion(dto.QuestionCreateDTO{TopicID: topicID, Type: "text", Prompt: "Q", Order: order, CorrectAnswer: strPtr("a")})
		require.NoError(t, err)
		return q.Order
	}

	assert.Equal(t, 1, create(topic.ID, 0))
	assert.Equal(t, 2, create(topic.ID, 0))
	assert.Equal(t, 5, create(topic.ID, 5))
	assert.Equal(t, 6, create(topic.ID, 0))
	assert.Equal(t, 1, create(other.ID, 0))
}

func TestQuestionService_UpdateKeepsOrderWhenUnset(t *testing.T) {
	m := newMemStore()
	topic := seedTopic(m, "T", "TTTTTT")
	svc := NewQuestionService(fakeQuestionRepo{m}, fakeTopicRepo{m})

	created, err := svc.CreateQuestion(dto.QuestionCreateDTO{TopicID: topic.ID, Type: "text", Prompt: "Q", Order: 3, CorrectAnswer: strPtr("a")})
	require.NoError(t, err)

	updated, err := svc.UpdateQuestion(created.ID, dto.QuestionUpdateDTO{Type: "text", Prompt: "Q2", CorrectAnswer: strPtr("b")})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Order)
	assert.Equal(t, topic.ID, m.questions[created.ID].TopicID)

	updated, err = svc.UpdateQuestion(created.ID, dto.QuestionUpdateDTO{Type: "text", Prompt: "Q2", Order: 1, CorrectAnswer: strPtr("b")})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Order)
}

func TestQuestionService_UpdateTypeChangeClearsFields(t *testing.T) {
	m := newMemStore()
	topic := seedTopic(m, "T", "TTTTTT")
	svc := NewQuestionService(fakeQuestionRepo{m}, fakeTopicRepo{m})

	created, err := svc.CreateQuestion(dto.QuestionCreateDTO{
		TopicID: topic.ID, Type: "choice", Prompt: "Pick", Order: 1,
		Options: []string{"x", "y", "z"}, CorrectIndex: intPtr(2),
	})
	require.NoError(t, err)
	assert.Equal(t, "choice", created.Type)

	updated, err := svc.UpdateQuestion(created.ID, dto.QuestionUpdateDTO{
		Type: "text", Prompt: "Type it", Order: 3, CorrectAnswer: strPtr("z"),
	})
	require.NoError(t, err)
	assert.Equal(t, "text", updated.Type)
	assert.Empty(t, updated.Options)
	assert.Nil(t, updated.CorrectIndex)
	assert.Equal(t, "z", *updated.CorrectAnswer)

	stored := m.questions[created.ID]
	assert.Equal(t, quiz.TypeText, stored.Type)
	assert.Nil(t, stored.Options)
	assert.Nil(t, stored.CorrectIndex)
	assert.Equal(t, 3, stored.Order)
}

func TestQuestionService_PublicViewsHideAnswers(t *testing.T) {
	m := newMemStore()
	topic := seedTopic(m, "T", "TTTTTT")
	q := seedChoice(m, topic.ID, 1, "Pick", []string{"a", "b"}, 1)
	seedText(m, topic.ID, 2, "Say", "hello")
	svc := NewQuestionService(fakeQuestionRepo{m}, fakeTopicRepo{m})

	one, err := svc.GetPublicQuestion(q.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, one.Options)
	assert.Equal(t, "choice", one.Type)

	list, err := svc.GetPublicQuestions(&topic.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Pick", list[0].Prompt)

	full, err := svc.GetAllQuestions(&topic.ID)
	require.NoError(t, err)
	require.Len(t, full, 2)
	assert.Equal(t, 1, *full[0].CorrectIndex)
	assert.Equal(t, "hello", *full[1].CorrectAnswer)
}

func TestQuestionService_DeleteMissing(t *testing.T) {
	m := newMemStore()
	svc := NewQuestionService(fakeQuestionRepo{m}, fakeTopicRepo{m})
	assert.ErrorIs(t, svc.DeleteQuestion(5), ErrNotFound)
}
