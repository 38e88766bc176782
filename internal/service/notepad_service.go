package service

import (
	"bytes"
	"context"
	"strings"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"

	"github.com/go-pdf/fpdf"
)

const (
	NotepadTextFile = "anotacoes.txt"
	NotepadPDFFile  = "anotacoes.pdf"
)

const (
	TargetFab     = "fab"
	TargetNotepad = "notepad"
)

type NotepadService struct {
	store *StoreService
	plan  *StudyPlanService
}

func NewNotepadService(store *StoreService, plan *StudyPlanService) *NotepadService {
	return &NotepadService{store: store, plan: plan}
}

func (s *NotepadService) Get(ctx context.Context, userID string, now time.Time) model.Notepad {
	content, _ := LoadJSON[string](ctx, s.store, userID, model.KeyNotepadContent)
	n := model.Notepad{
		Content:    content,
		TodayFocus: s.plan.TodayFocus(ctx, userID, now),
	}
	if pos, ok := LoadJSON[model.Position](ctx, s.store, userID, model.KeyFabPosition); ok {
		n.FabPosition = &pos
	}
	if pos, ok := LoadJSON[model.Position](ctx, s.store, userID, model.KeyNotepadPosition); ok {
		n.NotepadPosition = &pos
	}
	return n
}

func (s *NotepadService) SaveContent(ctx context.Context, userID, content string) error {
	return s.store.SaveJSON(ctx, userID, model.KeyNotepadContent, content)
}

func positionKey(target string) (string, error) {
	switch target {
	case TargetFab:
		return model.KeyFabPosition, nil
	case TargetNotepad:
		return model.KeyNotepadPosition, nil
	default:
		return "", util.ErrInvalidInput
	}
}

func (s *NotepadService) SavePosition(ctx context.Context, userID, target string, pos model.Position) error {
	key, err := positionKey(target)
	if err != nil {
		return err
	}
	return s.store.SaveJSON(ctx, userID, key, pos)
}

// SaveDrag 根据一次完整拖拽（按下点、元素原位置、松开点）计算并保存最终位置
func (s *NotepadService) SaveDrag(ctx context.Context, userID, target string, pointerDown, origin, pointerUp model.Position) (model.Position, error) {
	drag := model.BeginDrag(pointerDown, origin)
	pos, _ := drag.End(pointerUp)
	if err := s.SavePosition(ctx, userID, target, pos); err != nil {
		return model.Position{}, err
	}
	return pos, nil
}

func (s *NotepadService) ExportText(ctx context.Context, userID string) []byte {
	content, _ := LoadJSON[string](ctx, s.store, userID, model.KeyNotepadContent)
	return []byte(content)
}

func (s *NotepadService) ExportPDF(ctx context.Context, userID string) ([]byte, error) {
	content, _ := LoadJSON[string](ctx, s.store, userID, model.KeyNotepadContent)
	return NotesPDF(content)
}

// NotesPDF 把笔记原样写入 A4 页面，自动换行分页
func NotesPDF(content string) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Anotações", true)
	pdf.SetMargins(10, 10, 10)
	pdf.SetAutoPageBreak(true, 10)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)

	// 内置字体使用 cp1252，需要转换葡语字符
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.MultiCell(0, 6, tr(strings.ReplaceAll(content, "\r\n", "\n")), "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
