package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/session"
	"study_boost_backend/internal/util"
	"study_boost_backend/pkg/logger"

	"go.uber.org/zap"
)

// QuoteSource 新建月份时使用的随机激励短句
type QuoteSource interface {
	RandomQuote() string
}

type CalendarService struct {
	ai     *AIService
	store  *StoreService
	guard  InFlightGuard
	quotes QuoteSource
}

func NewCalendarService(ai *AIService, store *StoreService, guard InFlightGuard, quotes QuoteSource) *CalendarService {
	return &CalendarService{ai: ai, store: store, guard: guard, quotes: quotes}
}

// MonthView 日历某月的返回结构
type MonthView struct {
	Key         string `json:"key"`
	Year        int    `json:"year"`
	Month       int    `json:"month"`
	DaysInMonth int    `json:"daysInMonth"`
	*model.CalendarMonth
}

// Load 读取整份日历；旧结构的数据在读取时迁移并写回
func (s *CalendarService) Load(ctx context.Context, userID string) model.CalendarData {
	stored, ok := LoadJSON[map[string]*session.StoredMonth](ctx, s.store, userID, model.KeyCalendar)
	if !ok {
		return model.CalendarData{}
	}
	data, migrated := session.Normalize(stored, s.quotes.RandomQuote)
	if migrated {
		logger.Log.Info("Migrated legacy calendar data", zap.String("user", userID))
		if err := s.store.SaveJSON(ctx, userID, model.KeyCalendar, data); err != nil {
			logger.Log.Warn("Failed to persist migrated calendar", zap.String("user", userID), zap.Error(err))
		}
	}
	return data
}

func validMonth(year int, month time.Month) error {
	if year < 1 || month < time.January || month > time.December {
		return util.ErrInvalidInput
	}
	return nil
}

func (s *CalendarService) Month(ctx context.Context, userID string, year int, month time.Month) (*MonthView, error) {
	if err := validMonth(year, month); err != nil {
		return nil, err
	}
	data := s.Load(ctx, userID)
	return &MonthView{
		Key:           session.MonthKey(year, month),
		Year:          year,
		Month:         int(month),
		DaysInMonth:   session.DaysIn(year, month),
		CalendarMonth: session.Month(data, year, month, s.quotes.RandomQuote),
	}, nil
}

func (s *CalendarService) ToggleStudyDay(ctx context.Context, userID string, year int, month time.Month, day int) (*MonthView, error) {
	if err := validMonth(year, month); err != nil {
		return nil, err
	}
	data := s.Load(ctx, userID)
	if _, err := session.ToggleStudyDay(data, year, month, day, s.quotes.RandomQuote); err != nil {
		return nil, err
	}
	if err := s.store.SaveJSON(ctx, userID, model.KeyCalendar, data); err != nil {
		return nil, err
	}
	return &MonthView{
		Key:           session.MonthKey(year, month),
		Year:          year,
		Month:         int(month),
		DaysInMonth:   session.DaysIn(year, month),
		CalendarMonth: data[session.MonthKey(year, month)],
	}, nil
}

var examDatesSchema = ArrayOf(ObjectSchema(map[string]*Schema{
	"name": StringSchema(),
	"date": StringSchema(),
}))

func examSearchPrompt(query string) string {
	return fmt.Sprintf("Pesquise as datas oficiais das provas relacionadas a \"%s\". Responda somente com um JSON array em que cada objeto tem 'name' (nome do evento, ex: \"ENEM 2024 - Dia 1\") e 'date' (data no formato YYYY-MM-DD). Não inclua nenhum texto fora do JSON.", query)
}

// SearchExamDates 借助联网搜索找到考试日期并合并进日历，返回模型给出的全部日期
func (s *CalendarService) SearchExamDates(ctx context.Context, userID, query string) ([]model.ExamDate, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, util.ErrInvalidInput
	}

	var exams []model.ExamDate
	added := 0
	err := runGuarded(ctx, s.guard, userID, util.FeatureCalendar, func() error {
		text, err := s.ai.Generate(ctx, GenerateRequest{
			Feature:   util.FeatureCalendar,
			Prompt:    examSearchPrompt(query),
			Schema:    examDatesSchema,
			WebSearch: true,
		})
		if err != nil {
			return err
		}

		decoded, ok := DecodeJSON[[]model.ExamDate](text)
		if !ok || len(decoded) == 0 {
			return util.ErrEmptyResult
		}
		exams = decoded

		data := s.Load(ctx, userID)
		added = session.MergeExamDates(data, exams, s.quotes.RandomQuote)
		return s.store.SaveJSON(ctx, userID, model.KeyCalendar, data)
	})
	if err != nil {
		return nil, 0, err
	}
	return exams, added, nil
}

func motivationPrompt(days int) string {
	return fmt.Sprintf("Gere %d mensagens motivacionais ou dicas de estudo curtas para um estudante, uma para cada dia do mês. A resposta deve ser um objeto JSON onde a chave é o dia (1, 2, 3...) e o valor é a mensagem.", days)
}

// GenerateMotivation 每天一条寄语，只返回不保存
func (s *CalendarService) GenerateMotivation(ctx context.Context, userID string, year int, month time.Month) (map[int]string, error) {
	if err := validMonth(year, month); err != nil {
		return nil, err
	}
	days := session.DaysIn(year, month)

	var messages map[int]string
	err := runGuarded(ctx, s.guard, userID, util.FeatureCalendar, func() error {
		text, err := s.ai.Generate(ctx, GenerateRequest{
			Feature: util.FeatureCalendar,
			Prompt:  motivationPrompt(days),
			JSON:    true,
		})
		if err != nil {
			return err
		}

		raw, ok := DecodeJSON[map[string]string](text)
		if !ok {
			return util.ErrEmptyResult
		}
		messages = make(map[int]string, len(raw))
		for k, v := range raw {
			day, err := strconv.Atoi(strings.TrimSpace(k))
			if err != nil || day < 1 || day > days {
				continue
			}
			messages[day] = v
		}
		if len(messages) == 0 {
			return util.ErrEmptyResult
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}
