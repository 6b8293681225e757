package service

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizService_ViewContainsEveryQuestionOnce(t *testing.T) {
	f := newGeographyFixture()
	svc := NewQuizService(fakeTopicRepo{f.m})

	view, err := svc.GetQuizByCode("geo123")
	require.NoError(t, err)
	assert.Equal(t, "Geography", view.Title)
	require.Len(t, view.Questions, 3)

	ids := []uint{}
	for _, q := range view.Questions {
		ids = append(ids, q.ID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	assert.Equal(t, []uint{f.capital.ID, f.river.ID, f.continent.ID}, ids)
}

func TestQuizService_OptionOrderMapsToCanonicalOptions(t *testing.T) {
	f := newGeographyFixture()
	svc := NewQuizService(fakeTopicRepo{f.m})

	for i := 0; i < 20; i++ {
		view, err := svc.GetQuizByCode("GEO123")
		require.NoError(t, err)
		for _, q := range view.Questions {
			stored := f.m.questions[q.ID]
			if q.Type == "text" {
				assert.Empty(t, q.Options)
				assert.Empty(t, q.OptionOrder)
				continue
			}
			require.Len(t, q.OptionOrder, len(stored.Options))
			for k, canonical := range q.OptionOrder {
				assert.Equal(t, stored.Options[canonical], q.Options[k])
			}
		}
	}
}

func TestQuizService_NotFound(t *testing.T) {
	f := newGeographyFixture()
	seedTopic(f.m, "Empty", "EMPTY1")
	svc := NewQuizService(fakeTopicRepo{f.m})

	_, err := svc.GetQuizByCode("NOPE00")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetQuizByCode("EMPTY1")
	assert.ErrorIs(t, err, ErrNotFound)
}
