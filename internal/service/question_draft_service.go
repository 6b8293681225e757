package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lshigami/quizdesk/internal/dto"
	"github.com/lshigami/quizdesk/internal/quiz"
	"github.com/lshigami/quizdesk/internal/repository"
	"github.com/rs/zerolog/log"
)

// QuestionDraftService asks the LLM for question drafts on a topic. Drafts
// are validated like hand-written questions but never stored.
type QuestionDraftService interface {
	DraftQuestions(ctx context.Context, topicID uint, req dto.QuestionDraftRequestDTO) ([]dto.QuestionDraftResponse, error)
}

type questionDraftService struct {
	topicRepo repository.TopicRepository
	llm       GeminiService
}

func NewQuestionDraftService(topicRepo repository.TopicRepository, llm GeminiService) QuestionDraftService {
	return &questionDraftService{topicRepo: topicRepo, llm: llm}
}

type llmDraft struct {
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options"`
	CorrectIndex  *int     `json:"correct_index"`
	CorrectAnswer *string  `json:"correct_answer"`
}

type llmDraftEnvelope struct {
	Questions []llmDraft `json:"questions"`
}

func (s *questionDraftService) DraftQuestions(ctx context.Context, topicID uint, req dto.QuestionDraftRequestDTO) ([]dto.QuestionDraftResponse, error) {
	if s.llm == nil {
		return nil, fmt.Errorf("question drafts need GEMINI_API_KEY: %w", ErrUnavailable)
	}
	if req.Count < 1 {
		return nil, validationErrorf("count must be positive")
	}
	if req.Type != "" && !quiz.QuestionType(req.Type).Valid() {
		return nil, validationErrorf("type must be either %q or %q", quiz.TypeChoice, quiz.TypeText)
	}

	topic, err := s.topicRepo.FindByIDWithQuestions(topicID)
	if err != nil {
		return nil, repoError(err, fmt.Sprintf("topic %d", topicID))
	}
	existing := make([]string, 0, len(topic.Questions))
	for _, q := range topic.Questions {
		existing = append(existing, q.Prompt)
	}

	raw, err := s.llm.GenerateText(ctx, buildDraftPrompt(topic.Title, req.Count, req.Type, existing))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	drafts, err := parseDrafts(raw, quiz.QuestionType(req.Type), req.Count)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", raw).Msg("Failed to parse question drafts from Gemini response")
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	log.Info().Uint("topicID", topicID).Int("requested", req.Count).Int("returned", len(drafts)).Msg("Question drafts generated")
	return drafts, nil
}

func buildDraftPrompt(title string, count int, qType string, existing []string) string {
	var b strings.Builder
	b.WriteString("You are helping a teacher write quiz questions.\n")
	fmt.Fprintf(&b, "Topic: %s\n", title)
	fmt.Fprintf(&b, "Write %d new questions.\n", count)
	switch quiz.QuestionType(qType) {
	case quiz.TypeChoice:
		b.WriteString("Every question must be a multiple-choice question.\n")
	case quiz.TypeText:
		b.WriteString("Every question must be a short free-text question with a single short answer.\n")
	default:
		b.WriteString("Mix multiple-choice and short free-text questions.\n")
	}
	if len(existing) > 0 {
		b.WriteString("Do not repeat these existing questions:\n")
		for _, p := range existing {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	b.WriteString(`
Reply with JSON only, in this shape:
{"questions": [
  {"type": "choice", "prompt": "...", "options": ["...", "...", "...", "..."], "correct_index": 0},
  {"type": "text", "prompt": "...", "correct_answer": "..."}
]}
correct_index is 0-based. Text answers must be a word or short phrase.
`)
	return b.String()
}

// parseDrafts extracts the JSON object from the model reply, drops drafts
// that fail validation or have the wrong type, and keeps at most limit.
func parseDrafts(raw string, want quiz.QuestionType, limit int) ([]dto.QuestionDraftResponse, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in model reply")
	}

	var envelope llmDraftEnvelope
	if err := json.Unmarshal([]byte(raw[start:end+1]), &envelope); err != nil {
		return nil, fmt.Errorf("decode model reply: %w", err)
	}

	drafts := make([]dto.QuestionDraftResponse, 0, limit)
	for i, d := range envelope.Questions {
		if len(drafts) == limit {
			break
		}
		body, err := validateQuestion(d.Type, d.Prompt, d.Options, d.CorrectIndex, d.CorrectAnswer)
		if err != nil {
			log.Debug().Err(err).Int("draft", i).Msg("Skipping invalid question draft")
			continue
		}
		if want != "" && body.Type != want {
			continue
		}
		drafts = append(drafts, dto.QuestionDraftResponse{
			Type:          string(body.Type),
			Prompt:        body.Prompt,
			Options:       body.Options,
			CorrectIndex:  body.CorrectIndex,
			CorrectAnswer: body.CorrectAnswer,
		})
	}
	if len(drafts) == 0 {
		return nil, fmt.Errorf("model reply contained no valid questions")
	}
	return drafts, nil
}
