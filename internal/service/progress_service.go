package service

import (
	"context"
	"sort"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/session"
	"study_boost_backend/internal/util"
)

type ChartPoint struct {
	Name  string `json:"name"`
	Topic string `json:"topic"`
	Score int    `json:"score"`
}

type DisciplineStat struct {
	Discipline string `json:"discipline"`
	Average    int    `json:"average"`
	Simulados  int    `json:"simulados"`
}

type ProgressSummary struct {
	OverallAverage   int              `json:"overallAverage"`
	TotalQuizzes     int              `json:"totalQuizzes"`
	TotalStudiedDays int              `json:"totalStudiedDays"`
	Chart            []ChartPoint     `json:"chart"`
	Disciplines      []DisciplineStat `json:"disciplines"`
}

type ProgressService struct {
	store    *StoreService
	calendar *CalendarService
	location *time.Location
}

func NewProgressService(store *StoreService, calendar *CalendarService) *ProgressService {
	return &ProgressService{store: store, calendar: calendar, location: time.Local}
}

func (s *ProgressService) Summary(ctx context.Context, userID string) ProgressSummary {
	history, _ := LoadJSON[[]model.QuizHistoryEntry](ctx, s.store, userID, model.KeyQuizHistory)
	summary := Summarize(history, s.location)

	for _, m := range s.calendar.Load(ctx, userID) {
		summary.TotalStudiedDays += m.StudiedCount()
	}
	return summary
}

// Summarize 按时间排序后计算总体与各学科的正确率
func Summarize(history []model.QuizHistoryEntry, loc *time.Location) ProgressSummary {
	sorted := make([]model.QuizHistoryEntry, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp < sorted[j].Timestamp })

	summary := ProgressSummary{
		TotalQuizzes: len(sorted),
		Chart:        make([]ChartPoint, 0, len(sorted)),
		Disciplines:  []DisciplineStat{},
	}

	type agg struct{ score, total, count int }
	byDiscipline := map[string]*agg{}
	var order []string
	totalScore, totalQuestions := 0, 0

	for _, e := range sorted {
		totalScore += e.Score
		totalQuestions += e.TotalQuestions
		summary.Chart = append(summary.Chart, ChartPoint{
			Name:  time.UnixMilli(e.Timestamp).In(loc).Format(util.BRDateFormat),
			Topic: e.Topic,
			Score: session.Percentage(e.Score, e.TotalQuestions),
		})

		a, ok := byDiscipline[e.Discipline]
		if !ok {
			a = &agg{}
			byDiscipline[e.Discipline] = a
			order = append(order, e.Discipline)
		}
		a.score += e.Score
		a.total += e.TotalQuestions
		a.count++
	}

	summary.OverallAverage = session.Percentage(totalScore, totalQuestions)
	for _, d := range order {
		a := byDiscipline[d]
		summary.Disciplines = append(summary.Disciplines, DisciplineStat{
			Discipline: d,
			Average:    session.Percentage(a.score, a.total),
			Simulados:  a.count,
		})
	}
	return summary
}
