package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geographyTopic() []Question {
	return []Question{
		choiceQuestion(10, 1, "Bukhara", "Tashkent", "Khiva"),
		choiceQuestion(11, 0, "Amu Darya", "Volga"),
		textQuestion(12, "Tashkent"),
	}
}

func isCorrectFlags(res *Result) []bool {
	flags := make([]bool, len(res.Answers))
	for i, a := range res.Answers {
		flags[i] = a.IsCorrect
	}
	return flags
}

func TestScore_AllCorrect(t *testing.T) {
	res, err := Score(geographyTopic(), []SubmittedAnswer{
		{QuestionID: 10, Response: ChoiceResponse(1)},
		{QuestionID: 11, Response: ChoiceResponse(0)},
		{QuestionID: 12, Response: TextResponse("tashkent")},
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, 3, res.TotalScore)
	assert.Equal(t, 3, res.MaxScore)
	assert.Equal(t, []bool{true, true, true}, isCorrectFlags(res))
}

func TestScore_PartiallyCorrect(t *testing.T) {
	res, err := Score(geographyTopic(), []SubmittedAnswer{
		{QuestionID: 10, Response: ChoiceResponse(0)},
		{QuestionID: 11, Response: ChoiceResponse(0)},
		{QuestionID: 12, Response: TextResponse("Samarqand")},
	}, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalScore)
	assert.Equal(t, 3, res.MaxScore)
	assert.Equal(t, []bool{false, true, false}, isCorrectFlags(res))
}

func TestScore_UnknownQuestion(t *testing.T) {
	res, err := Score(geographyTopic(), []SubmittedAnswer{
		{QuestionID: 10, Response: ChoiceResponse(1)},
		{QuestionID: 99, Response: ChoiceResponse(0)},
	}, 1)

	assert.ErrorIs(t, err, ErrUnknownQuestion)
	assert.Nil(t, res)
}

func TestScore_DuplicateQuestion(t *testing.T) {
	_, err := Score(geographyTopic(), []SubmittedAnswer{
		{QuestionID: 10, Response: ChoiceResponse(1)},
		{QuestionID: 10, Response: ChoiceResponse(1)},
	}, 1)

	assert.ErrorIs(t, err, ErrDuplicateQuestion)
}

func TestScore_PreservesInputOrder(t *testing.T) {
	submitted := []SubmittedAnswer{
		{QuestionID: 12, Response: TextResponse("x")},
		{QuestionID: 10, Response: ChoiceResponse(1)},
		{QuestionID: 11, Response: MalformedResponse("?")},
	}
	res, err := Score(geographyTopic(), submitted, 1)
	require.NoError(t, err)

	require.Len(t, res.Answers, len(submitted))
	for i, a := range res.Answers {
		assert.Equal(t, submitted[i].QuestionID, a.QuestionID)
		assert.Equal(t, submitted[i].Response, a.Response)
	}
}

func TestScore_WeightInvariant(t *testing.T) {
	for _, weight := range []int{1, 2, 10} {
		res, err := Score(geographyTopic(), []SubmittedAnswer{
			{QuestionID: 10, Response: ChoiceResponse(1)},
			{QuestionID: 12, Response: TextResponse(" TASHKENT")},
		}, weight)
		require.NoError(t, err)

		correct := 0
		for _, a := range res.Answers {
			if a.IsCorrect {
				correct++
			}
		}
		assert.Equal(t, correct*weight, res.TotalScore)
		assert.Equal(t, 3*weight, res.MaxScore)
		assert.Equal(t, correct, res.CorrectCount)
	}
}

func TestScore_NonPositiveWeightIsOne(t *testing.T) {
	res, err := Score(geographyTopic(), []SubmittedAnswer{{QuestionID: 11, Response: ChoiceResponse(0)}}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalScore)
	assert.Equal(t, 3, res.MaxScore)
}

func TestScore_MalformedAnswersStillScoreTheRest(t *testing.T) {
	res, err := Score(geographyTopic(), []SubmittedAnswer{
		{QuestionID: 10, Response: MalformedResponse("first")},
		{QuestionID: 11, Response: ChoiceResponse(0)},
	}, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalScore)
	assert.Equal(t, []bool{false, true}, isCorrectFlags(res))
}
