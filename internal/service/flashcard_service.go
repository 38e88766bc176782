package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/session"
	"study_boost_backend/internal/util"
	"study_boost_backend/pkg/logger"

	"go.uber.org/zap"
)

const FlashcardExportFile = "flashcards_anki.csv"

var flashcardSchema = ArrayOf(ObjectSchema(map[string]*Schema{
	"pergunta": StringSchema(),
	"resposta": StringSchema(),
}))

type FlashcardService struct {
	ai    *AIService
	store *StoreService
	guard InFlightGuard
}

func NewFlashcardService(ai *AIService, store *StoreService, guard InFlightGuard) *FlashcardService {
	return &FlashcardService{ai: ai, store: store, guard: guard}
}

func flashcardPrompt(topic, discipline string, count int) string {
	return fmt.Sprintf("Crie %d flashcards sobre \"%s\" em \"%s\". A resposta deve ser um JSON array onde cada objeto tem 'pergunta' e 'resposta'.",
		count, topic, discipline)
}

func (s *FlashcardService) Get(ctx context.Context, userID string) *session.FlashcardDeck {
	d, ok := LoadJSON[*session.FlashcardDeck](ctx, s.store, userID, model.KeyFlashcardSession)
	if !ok || d == nil {
		return session.NewFlashcardDeck()
	}
	if !d.Valid() {
		logger.Log.Warn("Discarding inconsistent flashcard session", zap.String("user", userID), zap.String("state", string(d.State)))
		return session.NewFlashcardDeck()
	}
	return d
}

func (s *FlashcardService) update(ctx context.Context, userID string, fn func(d *session.FlashcardDeck) error) (*session.FlashcardDeck, error) {
	var d *session.FlashcardDeck
	err := runGuarded(ctx, s.guard, userID, util.FeatureFlashcards, func() error {
		d = s.Get(ctx, userID)
		if err := fn(d); err != nil {
			return err
		}
		return s.store.SaveJSON(ctx, userID, model.KeyFlashcardSession, d)
	})
	if d == nil {
		d = s.Get(ctx, userID)
	}
	return d, err
}

func (s *FlashcardService) Start(ctx context.Context, userID, discipline, topic string, count int) (*session.FlashcardDeck, error) {
	var d *session.FlashcardDeck
	err := runGuarded(ctx, s.guard, userID, util.FeatureFlashcards, func() error {
		d = s.Get(ctx, userID)
		if err := d.Configure(discipline, topic, count); err != nil {
			return err
		}
		text, err := s.ai.Generate(ctx, GenerateRequest{
			Feature: util.FeatureFlashcards,
			Prompt:  flashcardPrompt(d.Topic, d.Discipline, d.Count),
			Schema:  flashcardSchema,
		})
		if err != nil {
			return err
		}
		cards, _ := DecodeJSON[[]model.Flashcard](text)
		if err := d.Start(cards); err != nil {
			return err
		}
		return s.store.SaveJSON(ctx, userID, model.KeyFlashcardSession, d)
	})
	if d == nil {
		d = s.Get(ctx, userID)
	}
	return d, err
}

func (s *FlashcardService) Flip(ctx context.Context, userID string) (*session.FlashcardDeck, error) {
	return s.update(ctx, userID, func(d *session.FlashcardDeck) error { return d.Flip() })
}

func (s *FlashcardService) Evaluate(ctx context.Context, userID string, correct bool) (*session.FlashcardDeck, error) {
	return s.update(ctx, userID, func(d *session.FlashcardDeck) error {
		_, err := d.Evaluate(correct)
		return err
	})
}

func (s *FlashcardService) Restart(ctx context.Context, userID string) (*session.FlashcardDeck, error) {
	return s.update(ctx, userID, func(d *session.FlashcardDeck) error {
		d.Restart()
		return nil
	})
}

// ExportCSV Anki 可导入的分号分隔文件
func (s *FlashcardService) ExportCSV(ctx context.Context, userID string) ([]byte, error) {
	d := s.Get(ctx, userID)
	if len(d.Cards) == 0 {
		return nil, util.ErrEmptyResult
	}
	return FlashcardsCSV(d.Cards)
}

func FlashcardsCSV(cards []model.Flashcard) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'
	if err := w.Write([]string{"Pergunta", "Resposta"}); err != nil {
		return nil, err
	}
	for _, c := range cards {
		if err := w.Write([]string{c.Question, c.Answer}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
