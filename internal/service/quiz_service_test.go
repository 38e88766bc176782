package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/session"
	"study_boost_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quizReply = `[
 {"pergunta":"Quanto é 2+2?","opcoes":["3","4","5","6"],"respostaCorreta":1},
 {"pergunta":"Raiz de 9?","opcoes":["1","2","3","4"],"respostaCorreta":2}
]`

func newQuizService(p *fakeProvider) *QuizService {
	svc := NewQuizService(newTestAI(p), NewStoreService(newMemoryStore()), NewMemoryGuard())
	svc.now = func() time.Time { return time.UnixMilli(1717400000000) }
	return svc
}

func TestQuizServiceFullRunAppendsHistory(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{replies: []string{quizReply}}
	svc := newQuizService(p)

	q, err := svc.Start(ctx, "u1", "Matemática", "Aritmética", 5)
	require.NoError(t, err)
	assert.Equal(t, session.StateQuiz, q.State)
	assert.Contains(t, p.lastRequest().Prompt, "Gere 5 questões")

	// 第一题答对
	_, err = svc.Select(ctx, "u1", 1)
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, "u1")
	require.NoError(t, err)
	q, err = svc.Next(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, q.Current)
	assert.Empty(t, svc.History(ctx, "u1"))

	// 第二题答错
	_, err = svc.Select(ctx, "u1", 0)
	require.NoError(t, err)
	_, err = svc.Confirm(ctx, "u1")
	require.NoError(t, err)
	q, err = svc.Next(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, session.StateResults, q.State)
	assert.Equal(t, 50, q.Percentage())

	history := svc.History(ctx, "u1")
	require.Len(t, history, 1)
	assert.Equal(t, "Matemática", history[0].Discipline)
	assert.Equal(t, 1, history[0].Score)
	assert.Equal(t, 2, history[0].TotalQuestions)
	assert.Equal(t, int64(1717400000000), history[0].Timestamp)

	q, err = svc.Restart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, session.StateSetup, q.State)
	assert.Len(t, svc.History(ctx, "u1"), 1)
}

func TestQuizServiceEmptyGenerationStaysInSetup(t *testing.T) {
	ctx := context.Background()
	svc := newQuizService(&fakeProvider{replies: []string{"[]"}})

	q, err := svc.Start(ctx, "u1", "Física", "Cinemática", 0)
	assert.ErrorIs(t, err, util.ErrEmptyResult)
	assert.Equal(t, session.StateSetup, q.State)
	assert.Equal(t, session.StateSetup, svc.Get(ctx, "u1").State)
}

func TestQuizServiceRejectsInvalidActions(t *testing.T) {
	ctx := context.Background()
	svc := newQuizService(&fakeProvider{replies: []string{quizReply}})

	_, err := svc.Confirm(ctx, "u1")
	assert.ErrorIs(t, err, util.ErrInvalidTransition)

	_, err = svc.Start(ctx, "u1", "Física", "Óptica", 30)
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	_, err = svc.Start(ctx, "u1", "Física", "Óptica", 5)
	require.NoError(t, err)
	_, err = svc.Start(ctx, "u1", "Física", "Óptica", 5)
	assert.ErrorIs(t, err, util.ErrInvalidTransition)

	_, err = svc.Select(ctx, "u1", 7)
	assert.ErrorIs(t, err, util.ErrInvalidInput)
	_, err = svc.Next(ctx, "u1")
	assert.ErrorIs(t, err, util.ErrInvalidTransition)
}

func TestFlashcardServiceReviewAndExport(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{replies: []string{`[{"pergunta":"O que é ATP?","resposta":"Molécula de energia"},{"pergunta":"Onde ocorre o ciclo de Krebs?","resposta":"Na mitocôndria; matriz"}]`}}
	svc := NewFlashcardService(newTestAI(p), NewStoreService(newMemoryStore()), NewMemoryGuard())

	_, err := svc.ExportCSV(ctx, "u1")
	assert.ErrorIs(t, err, util.ErrEmptyResult)

	d, err := svc.Start(ctx, "u1", "Biologia", "Ciclo de Krebs", 0)
	require.NoError(t, err)
	assert.Equal(t, session.StateReview, d.State)
	assert.Contains(t, p.lastRequest().Prompt, "Crie 10 flashcards")

	// 未翻面不能评价
	_, err = svc.Evaluate(ctx, "u1", true)
	assert.ErrorIs(t, err, util.ErrInvalidTransition)

	for _, correct := range []bool{true, false} {
		_, err = svc.Flip(ctx, "u1")
		require.NoError(t, err)
		d, err = svc.Evaluate(ctx, "u1", correct)
		require.NoError(t, err)
	}
	assert.Equal(t, session.StateResults, d.State)
	assert.Equal(t, 1, d.Correct)
	assert.Equal(t, 1, d.Incorrect)

	data, err := svc.ExportCSV(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Pergunta;Resposta\nO que é ATP?;Molécula de energia\nOnde ocorre o ciclo de Krebs?;\"Na mitocôndria; matriz\"\n", string(data))
}

func TestQuizServiceDiscardsInconsistentSession(t *testing.T) {
	ctx := context.Background()
	stored := []string{
		`{"state":"quiz","questions":[]}`,
		`{"state":"quiz","current":3,"questions":[{"pergunta":"Raiz de 9?","opcoes":["1","2","3","4"],"respostaCorreta":2}]}`,
		`{"state":"results","current":-1,"questions":[]}`,
		`{"state":"pausado"}`,
	}

	for _, raw := range stored {
		kv := newMemoryStore()
		svc := NewQuizService(newTestAI(&fakeProvider{}), NewStoreService(kv), NewMemoryGuard())
		require.NoError(t, kv.Set(ctx, "u1", model.KeyQuizSession, raw))

		assert.Equal(t, session.StateSetup, svc.Get(ctx, "u1").State, raw)

		_, err := svc.Select(ctx, "u1", 0)
		assert.ErrorIs(t, err, util.ErrInvalidTransition, raw)
		_, err = svc.Confirm(ctx, "u1")
		assert.ErrorIs(t, err, util.ErrInvalidTransition, raw)
	}
}

// slowStore 读取时停顿，让并发请求的读改写交错
type slowStore struct {
	*memoryStore
	delay time.Duration
}

func (s *slowStore) Get(ctx context.Context, userID, key string) (string, bool, error) {
	time.Sleep(s.delay)
	return s.memoryStore.Get(ctx, userID, key)
}

func TestQuizServiceConcurrentNextAppendsOnce(t *testing.T) {
	ctx := context.Background()
	kv := &slowStore{memoryStore: newMemoryStore()}
	svc := NewQuizService(newTestAI(&fakeProvider{replies: []string{quizReply}}), NewStoreService(kv), NewMemoryGuard())

	_, err := svc.Start(ctx, "u1", "Matemática", "Aritmética", 5)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = svc.Select(ctx, "u1", 1)
		require.NoError(t, err)
		_, err = svc.Confirm(ctx, "u1")
		require.NoError(t, err)
		if i == 0 {
			_, err = svc.Next(ctx, "u1")
			require.NoError(t, err)
		}
	}

	kv.delay = 20 * time.Millisecond
	const callers = 4
	errs := make([]error, callers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.Next(ctx, "u1")
		}(i)
	}
	close(start)
	wg.Wait()

	finished := 0
	for _, err := range errs {
		if err == nil {
			finished++
			continue
		}
		assert.True(t, errors.Is(err, util.ErrRequestInFlight) || errors.Is(err, util.ErrInvalidTransition), err)
	}
	assert.Equal(t, 1, finished)
	assert.Len(t, svc.History(ctx, "u1"), 1)
	assert.Equal(t, session.StateResults, svc.Get(ctx, "u1").State)
}

func TestFlashcardServiceDiscardsInconsistentSession(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryStore()
	svc := NewFlashcardService(newTestAI(&fakeProvider{}), NewStoreService(kv), NewMemoryGuard())
	require.NoError(t, kv.Set(ctx, "u1", model.KeyFlashcardSession, `{"state":"review","current":2,"cards":[{"pergunta":"ATP?","resposta":"Energia"}]}`))

	assert.Equal(t, session.StateSetup, svc.Get(ctx, "u1").State)
	_, err := svc.Flip(ctx, "u1")
	assert.ErrorIs(t, err, util.ErrInvalidTransition)
}

func TestFlashcardServiceRejectsConcurrentMutation(t *testing.T) {
	ctx := context.Background()
	guard := NewMemoryGuard()
	p := &fakeProvider{replies: []string{`[{"pergunta":"ATP?","resposta":"Energia"}]`}}
	svc := NewFlashcardService(newTestAI(p), NewStoreService(newMemoryStore()), guard)

	_, err := svc.Start(ctx, "u1", "Biologia", "Metabolismo", 5)
	require.NoError(t, err)

	ok, err := guard.Acquire(ctx, "u1", util.FeatureFlashcards)
	require.NoError(t, err)
	require.True(t, ok)

	d, err := svc.Flip(ctx, "u1")
	assert.ErrorIs(t, err, util.ErrRequestInFlight)
	assert.False(t, d.Flipped)

	guard.Release(ctx, "u1", util.FeatureFlashcards)
	d, err = svc.Flip(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, d.Flipped)
}
