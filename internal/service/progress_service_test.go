package service

import (
	"context"
	"testing"
	"time"

	"study_boost_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	loc := time.UTC
	history := []model.QuizHistoryEntry{
		{Discipline: "Física", Topic: "Óptica", Score: 5, TotalQuestions: 10, Timestamp: time.Date(2024, 3, 2, 12, 0, 0, 0, loc).UnixMilli()},
		{Discipline: "Matemática", Topic: "Funções", Score: 8, TotalQuestions: 10, Timestamp: time.Date(2024, 3, 1, 12, 0, 0, 0, loc).UnixMilli()},
		{Discipline: "Matemática", Topic: "Geometria", Score: 1, TotalQuestions: 3, Timestamp: time.Date(2024, 3, 5, 12, 0, 0, 0, loc).UnixMilli()},
	}

	s := Summarize(history, loc)
	assert.Equal(t, 3, s.TotalQuizzes)
	assert.Equal(t, 61, s.OverallAverage) // 14/23

	require.Len(t, s.Chart, 3)
	assert.Equal(t, ChartPoint{Name: "01/03/2024", Topic: "Funções", Score: 80}, s.Chart[0])
	assert.Equal(t, ChartPoint{Name: "05/03/2024", Topic: "Geometria", Score: 33}, s.Chart[2])

	assert.Equal(t, []DisciplineStat{
		{Discipline: "Matemática", Average: 69, Simulados: 2},
		{Discipline: "Física", Average: 50, Simulados: 1},
	}, s.Disciplines)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, time.UTC)
	assert.Zero(t, s.OverallAverage)
	assert.Empty(t, s.Chart)
	assert.NotNil(t, s.Disciplines)
}

func TestProgressSummaryCountsStudiedDays(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryStore()
	store := NewStoreService(kv)
	calendar := newCalendarService(&fakeProvider{}, kv)
	svc := NewProgressService(store, calendar)

	_, err := calendar.ToggleStudyDay(ctx, "u1", 2024, time.May, 2)
	require.NoError(t, err)
	_, err = calendar.ToggleStudyDay(ctx, "u1", 2024, time.June, 7)
	require.NoError(t, err)
	require.NoError(t, store.SaveJSON(ctx, "u1", model.KeyQuizHistory, []model.QuizHistoryEntry{
		{Discipline: "Química", Score: 3, TotalQuestions: 4, Timestamp: 1},
	}))

	s := svc.Summary(ctx, "u1")
	assert.Equal(t, 2, s.TotalStudiedDays)
	assert.Equal(t, 75, s.OverallAverage)
}
