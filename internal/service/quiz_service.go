package service

import (
	"context"
	"fmt"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/session"
	"study_boost_backend/internal/util"
	"study_boost_backend/pkg/logger"

	"go.uber.org/zap"
)

var quizSchema = ArrayOf(ObjectSchema(map[string]*Schema{
	"pergunta":        StringSchema(),
	"opcoes":          ArrayOf(StringSchema()),
	"respostaCorreta": IntegerSchema(),
}))

type QuizService struct {
	ai    *AIService
	store *StoreService
	guard InFlightGuard
	now   func() time.Time
}

func NewQuizService(ai *AIService, store *StoreService, guard InFlightGuard) *QuizService {
	return &QuizService{ai: ai, store: store, guard: guard, now: time.Now}
}

func quizPrompt(topic, discipline string, count int) string {
	return fmt.Sprintf("Gere %d questões de múltipla escolha sobre o tópico \"%s\" na disciplina de \"%s\". Formate a resposta como um JSON array. Cada objeto deve ter: 'pergunta' (string), 'opcoes' (array de 4 strings), e 'respostaCorreta' (índice da resposta correta, de 0 a 3).",
		count, topic, discipline)
}

// Get 读取保存的会话；结构不一致的会话按空会话处理
func (s *QuizService) Get(ctx context.Context, userID string) *session.Quiz {
	q, ok := LoadJSON[*session.Quiz](ctx, s.store, userID, model.KeyQuizSession)
	if !ok || q == nil {
		return session.NewQuiz()
	}
	if !q.Valid() {
		logger.Log.Warn("Discarding inconsistent quiz session", zap.String("user", userID), zap.String("state", string(q.State)))
		return session.NewQuiz()
	}
	return q
}

// update 读改写在守卫内完成，与生成共用同一把守卫，并发修改返回 ErrRequestInFlight
func (s *QuizService) update(ctx context.Context, userID string, fn func(q *session.Quiz) error) (*session.Quiz, error) {
	var q *session.Quiz
	err := runGuarded(ctx, s.guard, userID, util.FeatureQuiz, func() error {
		q = s.Get(ctx, userID)
		if err := fn(q); err != nil {
			return err
		}
		return s.store.SaveJSON(ctx, userID, model.KeyQuizSession, q)
	})
	if q == nil {
		q = s.Get(ctx, userID)
	}
	return q, err
}

// Start 生成题目并进入答题；生成失败或没有题目时保持在 setup
func (s *QuizService) Start(ctx context.Context, userID, discipline, topic string, count int) (*session.Quiz, error) {
	var q *session.Quiz
	err := runGuarded(ctx, s.guard, userID, util.FeatureQuiz, func() error {
		q = s.Get(ctx, userID)
		if err := q.Configure(discipline, topic, count); err != nil {
			return err
		}
		text, err := s.ai.Generate(ctx, GenerateRequest{
			Feature: util.FeatureQuiz,
			Prompt:  quizPrompt(q.Topic, q.Discipline, q.Count),
			Schema:  quizSchema,
		})
		if err != nil {
			return err
		}
		questions, _ := DecodeJSON[[]model.QuizQuestion](text)
		if err := q.Start(questions); err != nil {
			return err
		}
		return s.store.SaveJSON(ctx, userID, model.KeyQuizSession, q)
	})
	if q == nil {
		q = s.Get(ctx, userID)
	}
	return q, err
}

func (s *QuizService) Select(ctx context.Context, userID string, option int) (*session.Quiz, error) {
	return s.update(ctx, userID, func(q *session.Quiz) error { return q.Select(option) })
}

func (s *QuizService) Confirm(ctx context.Context, userID string) (*session.Quiz, error) {
	return s.update(ctx, userID, func(q *session.Quiz) error { return q.Confirm() })
}

// Next 最后一题之后把成绩追加到 quizHistory
func (s *QuizService) Next(ctx context.Context, userID string) (*session.Quiz, error) {
	return s.update(ctx, userID, func(q *session.Quiz) error {
		finished, err := q.Next()
		if err != nil || !finished {
			return err
		}
		history, _ := LoadJSON[[]model.QuizHistoryEntry](ctx, s.store, userID, model.KeyQuizHistory)
		history = append(history, q.HistoryEntry(s.now().UnixMilli()))
		return s.store.SaveJSON(ctx, userID, model.KeyQuizHistory, history)
	})
}

func (s *QuizService) Restart(ctx context.Context, userID string) (*session.Quiz, error) {
	return s.update(ctx, userID, func(q *session.Quiz) error {
		q.Restart()
		return nil
	})
}

func (s *QuizService) History(ctx context.Context, userID string) []model.QuizHistoryEntry {
	history, ok := LoadJSON[[]model.QuizHistoryEntry](ctx, s.store, userID, model.KeyQuizHistory)
	if !ok {
		return []model.QuizHistoryEntry{}
	}
	return history
}
