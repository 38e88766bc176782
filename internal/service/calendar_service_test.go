package service

import (
	"context"
	"testing"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarService(p *fakeProvider, kv *memoryStore) *CalendarService {
	return NewCalendarService(newTestAI(p), NewStoreService(kv), NewMemoryGuard(), fixedQuote("Persista."))
}

func TestCalendarToggleStudyDay(t *testing.T) {
	ctx := context.Background()
	svc := newCalendarService(&fakeProvider{}, newMemoryStore())

	view, err := svc.Month(ctx, "u1", 2024, time.February)
	require.NoError(t, err)
	assert.Equal(t, "2024-1", view.Key)
	assert.Equal(t, 29, view.DaysInMonth)
	assert.Equal(t, "Persista.", view.Quote)

	view, err = svc.ToggleStudyDay(ctx, "u1", 2024, time.February, 29)
	require.NoError(t, err)
	assert.True(t, view.StudiedDays[29])

	view, err = svc.ToggleStudyDay(ctx, "u1", 2024, time.February, 29)
	require.NoError(t, err)
	assert.False(t, view.StudiedDays[29])

	_, err = svc.ToggleStudyDay(ctx, "u1", 2023, time.February, 29)
	assert.ErrorIs(t, err, util.ErrInvalidInput)
	_, err = svc.Month(ctx, "u1", 2024, 13)
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestCalendarLoadMigratesLegacyData(t *testing.T) {
	ctx := context.Background()
	kv := newMemoryStore()
	require.NoError(t, kv.Set(ctx, "u1", model.KeyCalendar,
		`{"2024-5":{"studiedDays":{"3":true},"messages":{"1":"Foco total!","2":"Continue."}}}`))

	svc := newCalendarService(&fakeProvider{}, kv)
	data := svc.Load(ctx, "u1")
	require.Contains(t, data, "2024-5")
	assert.Equal(t, "Foco total!", data["2024-5"].Quote)
	assert.True(t, data["2024-5"].StudiedDays[3])

	raw, _, _ := kv.Get(ctx, "u1", model.KeyCalendar)
	assert.NotContains(t, raw, "messages")
	assert.Contains(t, raw, `"quote":"Foco total!"`)
}

func TestCalendarSearchExamDatesMerges(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{replies: []string{
		`[{"name":"ENEM 2024 - Dia 1","date":"2024-11-03"},{"name":"ENEM 2024 - Dia 2","date":"2024-11-10"},{"name":"Sem data","date":"em breve"}]`,
		`[{"name":"ENEM 2024 - Dia 1","date":"2024-11-03"}]`,
	}}
	svc := newCalendarService(p, newMemoryStore())

	exams, added, err := svc.SearchExamDates(ctx, "u1", "ENEM 2024")
	require.NoError(t, err)
	assert.Len(t, exams, 3)
	assert.Equal(t, 2, added)
	assert.True(t, p.lastRequest().WebSearch)

	view, err := svc.Month(ctx, "u1", 2024, time.November)
	require.NoError(t, err)
	assert.Equal(t, []model.CalendarEvent{{Title: "ENEM 2024 - Dia 1"}}, view.Events[3])
	assert.Equal(t, []model.CalendarEvent{{Title: "ENEM 2024 - Dia 2"}}, view.Events[10])

	// 重复检索不会产生重复事件
	_, added, err = svc.SearchExamDates(ctx, "u1", "ENEM 2024")
	require.NoError(t, err)
	assert.Zero(t, added)

	_, _, err = svc.SearchExamDates(ctx, "u1", " ")
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestCalendarGenerateMotivation(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{replies: []string{`{"1":"Comece bem!","2":"Revise.","31":"fora do mês","x":"ignorar"}`, `{}`}}
	svc := newCalendarService(p, newMemoryStore())

	messages, err := svc.GenerateMotivation(ctx, "u1", 2024, time.June)
	require.NoError(t, err)
	assert.Equal(t, map[int]string{1: "Comece bem!", 2: "Revise."}, messages)
	assert.True(t, p.lastRequest().JSON)
	assert.Contains(t, p.lastRequest().Prompt, "Gere 30 mensagens")

	_, err = svc.GenerateMotivation(ctx, "u1", 2024, time.June)
	assert.ErrorIs(t, err, util.ErrEmptyResult)
}
