package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/lshigami/quizdesk/internal/model"
	"github.com/lshigami/quizdesk/internal/repository"
	"gorm.io/gorm"
)

// memStore backs the fake repositories used by the service tests.
type memStore struct {
	nextID      uint
	topics      map[uint]model.Topic
	questions   map[uint]model.Question
	submissions map[uint]model.Submission
	admins      map[uint]model.Admin

	failSubmissionCreate error
}

func newMemStore() *memStore {
	return &memStore{
		topics:      map[uint]model.Topic{},
		questions:   map[uint]model.Question{},
		submissions: map[uint]model.Submission{},
		admins:      map[uint]model.Admin{},
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) topicQuestions(topicID uint) []model.Question {
	var out []model.Question
	for _, q := range m.questions {
		if q.TopicID == topicID {
			out = append(out, q)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

type fakeTopicRepo struct{ m *memStore }

func (r fakeTopicRepo) Create(topic *model.Topic) error {
	for _, t := range r.m.topics {
		if t.Title == topic.Title || t.Code == topic.Code {
			return gorm.ErrDuplicatedKey
		}
	}
	topic.ID = r.m.id()
	topic.CreatedAt = time.Now()
	topic.UpdatedAt = topic.CreatedAt
	r.m.topics[topic.ID] = *topic
	return nil
}

func (r fakeTopicRepo) FindByID(id uint) (*model.Topic, error) {
	t, ok := r.m.topics[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &t, nil
}

func (r fakeTopicRepo) FindByCode(code string) (*model.Topic, error) {
	for _, t := range r.m.topics {
		if t.Code == code {
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeTopicRepo) FindByTitle(title string) (*model.Topic, error) {
	for _, t := range r.m.topics {
		if t.Title == title {
			return &t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeTopicRepo) FindByIDWithQuestions(id uint) (*model.Topic, error) {
	t, err := r.FindByID(id)
	if err != nil {
		return nil, err
	}
	t.Questions = r.m.topicQuestions(id)
	return t, nil
}

func (r fakeTopicRepo) FindAllWithQuestionCount() ([]repository.TopicWithQuestionCount, error) {
	var out []repository.TopicWithQuestionCount
	for _, t := range r.m.topics {
		out = append(out, repository.TopicWithQuestionCount{Topic: t, QuestionCount: len(r.m.topicQuestions(t.ID))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r fakeTopicRepo) Update(topic *model.Topic) error {
	if _, ok := r.m.topics[topic.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	topic.UpdatedAt = time.Now()
	r.m.topics[topic.ID] = *topic
	return nil
}

func (r fakeTopicRepo) DeleteCascade(id uint) error {
	if _, ok := r.m.topics[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	for qid, q := range r.m.questions {
		if q.TopicID == id {
			delete(r.m.questions, qid)
		}
	}
	for sid, s := range r.m.submissions {
		if s.TopicID == id {
			delete(r.m.submissions, sid)
		}
	}
	delete(r.m.topics, id)
	return nil
}

type fakeQuestionRepo struct{ m *memStore }

func (r fakeQuestionRepo) Create(q *model.Question) error {
	if _, ok := r.m.topics[q.TopicID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if q.Order <= 0 {
		last := 0
		for _, existing := range r.m.topicQuestions(q.TopicID) {
			last = max(last, existing.Order)
		}
		q.Order = repository.NextOrder(last)
	}
	q.ID = r.m.id()
	r.m.questions[q.ID] = *q
	return nil
}

func (r fakeQuestionRepo) FindByID(id uint) (*model.Question, error) {
	q, ok := r.m.questions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &q, nil
}

func (r fakeQuestionRepo) FindAll() ([]model.Question, error) {
	var out []model.Question
	for _, q := range r.m.questions {
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r fakeQuestionRepo) FindByTopicID(topicID uint) ([]model.Question, error) {
	return r.m.topicQuestions(topicID), nil
}

func (r fakeQuestionRepo) Update(q *model.Question) error {
	stored, ok := r.m.questions[q.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	updated := *q
	updated.TopicID = stored.TopicID
	r.m.questions[q.ID] = updated
	return nil
}

func (r fakeQuestionRepo) Delete(id uint) error {
	if _, ok := r.m.questions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.m.questions, id)
	return nil
}

type fakeSubmissionRepo struct{ m *memStore }

func (r fakeSubmissionRepo) Create(s *model.Submission) error {
	if r.m.failSubmissionCreate != nil {
		return r.m.failSubmissionCreate
	}
	s.ID = r.m.id()
	s.SubmittedAt = time.Now()
	for i := range s.Answers {
		s.Answers[i].ID = r.m.id()
		s.Answers[i].SubmissionID = s.ID
	}
	r.m.submissions[s.ID] = *s
	return nil
}

func (r fakeSubmissionRepo) FindByIDWithDetails(id uint) (*model.Submission, error) {
	s, ok := r.m.submissions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	s.Topic = r.m.topics[s.TopicID]
	return &s, nil
}

func (r fakeSubmissionRepo) FindAll(topicID *uint) ([]model.Submission, error) {
	var out []model.Submission
	for _, s := range r.m.submissions {
		if topicID != nil && s.TopicID != *topicID {
			continue
		}
		s.Topic = r.m.topics[s.TopicID]
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r fakeSubmissionRepo) Delete(id uint) error {
	if _, ok := r.m.submissions[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.m.submissions, id)
	return nil
}

type fakeAdminRepo struct{ m *memStore }

func (r fakeAdminRepo) Create(a *model.Admin) error {
	for _, existing := range r.m.admins {
		if existing.Email == a.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	a.ID = r.m.id()
	r.m.admins[a.ID] = *a
	return nil
}

func (r fakeAdminRepo) FindByID(id uint) (*model.Admin, error) {
	a, ok := r.m.admins[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r fakeAdminRepo) FindByEmail(email string) (*model.Admin, error) {
	for _, a := range r.m.admins {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r fakeAdminRepo) UpdatePassword(id uint, hash string) error {
	a, ok := r.m.admins[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	a.PasswordHash = hash
	r.m.admins[id] = a
	return nil
}

type fakeStatsRepo struct {
	topics, submissions int64
	byType              []repository.QuestionTypeCount
	recent              []repository.RecentSubmission
	pingErr             error
}

func (r fakeStatsRepo) CountTopics() (int64, error) { return r.topics, nil }
func (r fakeStatsRepo) CountQuestionsByType() ([]repository.QuestionTypeCount, error) {
	return r.byType, nil
}
func (r fakeStatsRepo) CountSubmissions() (int64, error) { return r.submissions, nil }
func (r fakeStatsRepo) RecentSubmissions(limit int) ([]repository.RecentSubmission, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}
func (r fakeStatsRepo) Ping() error { return r.pingErr }

type fakeGemini struct {
	reply   string
	err     error
	prompts []string
}

func (g *fakeGemini) GenerateText(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

func (g *fakeGemini) Close() error { return nil }

var errStorage = errors.New("connection reset")

func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
