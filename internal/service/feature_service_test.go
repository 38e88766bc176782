package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMindMapGenerateFillsIDs(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{replies: []string{"```json\n" + `{"id":"r","topic":"Revolução Francesa","children":[
		{"id":"a","topic":"Causas","children":[{"topic":"Crise fiscal"}]},
		{"id":"a","topic":"Fases"}]}` + "\n```"}}
	svc := NewMindMapService(newTestAI(p), NewMemoryGuard())

	root, err := svc.Generate(ctx, "u1", "Revolução Francesa")
	require.NoError(t, err)
	assert.Equal(t, 3, root.Depth())
	assert.Equal(t, 4, root.Count())
	assert.True(t, p.lastRequest().JSON)
	assert.Nil(t, p.lastRequest().Schema)

	ids := map[string]bool{}
	root.Walk(func(n *model.MindMapNode) {
		assert.NotEmpty(t, n.ID)
		ids[n.ID] = true
	})
	assert.Len(t, ids, 4)
	assert.Equal(t, "r", root.ID)
	assert.Equal(t, "a", root.Children[0].ID)
}

func TestMindMapGenerateErrors(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{replies: []string{`{"children":[]}`}}
	svc := NewMindMapService(newTestAI(p), NewMemoryGuard())

	_, err := svc.Generate(ctx, "u1", "")
	assert.ErrorIs(t, err, util.ErrInvalidInput)

	_, err = svc.Generate(ctx, "u1", "Genética")
	assert.ErrorIs(t, err, util.ErrEmptyResult)
}

func TestWritingAnalyzeUsesProModel(t *testing.T) {
	ctx := context.Background()
	p := &fakeProvider{replies: []string{`{"notaGeral":720,"pontosFortes":["Boa tese"],"areasParaMelhorar":["Coesão"],"paragrafoRevisado":"Texto revisado."}`}}
	svc := NewWritingService(newTestAI(p), NewMemoryGuard())

	analysis, err := svc.Analyze(ctx, "u1", "Minha redação sobre educação.", "")
	require.NoError(t, err)
	assert.Equal(t, 720, analysis.OverallScore)
	assert.Equal(t, []string{"Coesão"}, analysis.AreasToImprove)

	req := p.lastRequest()
	assert.Equal(t, "pro-test", req.Model)
	assert.Contains(t, req.Prompt, `do tipo "ENEM"`)

	_, err = svc.Analyze(ctx, "u1", "Texto", "Poema")
	assert.ErrorIs(t, err, util.ErrInvalidInput)
	_, err = svc.Analyze(ctx, "u1", "   ", "ENEM")
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestDailyTipFallsBack(t *testing.T) {
	ctx := context.Background()

	tip := NewTipService(newTestAI(&fakeProvider{replies: []string{"  Revise um pouco todo dia.  "}}), nil).DailyTip(ctx)
	assert.Equal(t, DailyTip{Tip: "Revise um pouco todo dia.", Source: "ai"}, tip)

	tip = NewTipService(newTestAI(&fakeProvider{err: errors.New("offline")}), nil).DailyTip(ctx)
	assert.Equal(t, DailyTip{Tip: fallbackTip, Source: "default"}, tip)

	tip = NewTipService(newTestAI(&fakeProvider{}), nil).DailyTip(ctx)
	assert.Equal(t, "default", tip.Source)
}

func TestNotepadPersistsContentAndPositions(t *testing.T) {
	ctx := context.Background()
	store := NewStoreService(newMemoryStore())
	plan := NewStudyPlanService(newTestAI(&fakeProvider{}), store, NewMemoryGuard())
	svc := NewNotepadService(store, plan)
	monday := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)

	n := svc.Get(ctx, "u1", monday)
	assert.Equal(t, "", n.Content)
	assert.Nil(t, n.FabPosition)
	assert.Equal(t, noFocus, n.TodayFocus)

	require.NoError(t, store.SaveJSON(ctx, "u1", model.KeyStudyPlan, model.StudyPlan{
		{Day: "segunda-feira", Discipline: "Português", Topic: "Crase"},
	}))
	require.NoError(t, svc.SaveContent(ctx, "u1", "Revisar crase"))
	require.NoError(t, svc.SavePosition(ctx, "u1", TargetFab, model.Position{X: 10, Y: 20}))

	pos, err := svc.SaveDrag(ctx, "u1", TargetNotepad,
		model.Position{X: 110, Y: 105}, // 按下
		model.Position{X: 100, Y: 100}, // 原位置
		model.Position{X: 310, Y: 205}) // 松开
	require.NoError(t, err)
	assert.Equal(t, model.Position{X: 300, Y: 200}, pos)

	n = svc.Get(ctx, "u1", monday)
	assert.Equal(t, "Revisar crase", n.Content)
	assert.Equal(t, &model.Position{X: 10, Y: 20}, n.FabPosition)
	assert.Equal(t, &model.Position{X: 300, Y: 200}, n.NotepadPosition)
	assert.Equal(t, "Português: Crase", n.TodayFocus)
	assert.Equal(t, []byte("Revisar crase"), svc.ExportText(ctx, "u1"))

	err = svc.SavePosition(ctx, "u1", "toolbar", model.Position{})
	assert.ErrorIs(t, err, util.ErrInvalidInput)
}

func TestNotesPDF(t *testing.T) {
	data, err := NotesPDF("Anotações de revisão\r\nEquação: ação e reação")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	empty, err := NotesPDF("")
	require.NoError(t, err)
	assert.NotEmpty(t, empty)
}
