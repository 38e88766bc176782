package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"
)

const StudyPlanExportFile = "plano_de_estudos.txt"

const noFocus = "Nenhum foco definido"

var weekdaysPT = [...]string{
	time.Sunday:    "domingo",
	time.Monday:    "segunda-feira",
	time.Tuesday:   "terça-feira",
	time.Wednesday: "quarta-feira",
	time.Thursday:  "quinta-feira",
	time.Friday:    "sexta-feira",
	time.Saturday:  "sábado",
}

var studyPlanSchema = ArrayOf(ObjectSchema(map[string]*Schema{
	"Dia":                StringSchema(),
	"Disciplina":         StringSchema(),
	"Tópico":             StringSchema(),
	"Atividade Sugerida": StringSchema(),
}))

type StudyPlanService struct {
	ai    *AIService
	store *StoreService
	guard InFlightGuard
}

func NewStudyPlanService(ai *AIService, store *StoreService, guard InFlightGuard) *StudyPlanService {
	return &StudyPlanService{ai: ai, store: store, guard: guard}
}

func studyPlanPrompt(s model.StudyPlanSettings) string {
	return fmt.Sprintf(`Crie um plano de estudos semanal para um estudante brasileiro.
- Objetivo: %s
- Meta Específica: %s
- Dias disponíveis: %s
- Períodos disponíveis: %s
- Pontos Fortes: %s
- Pontos Fracos: %s
Para cada dia disponível, sugira uma disciplina, um tópico específico e uma atividade (ex: "Resolver 20 exercícios", "Ler capítulo 5 e fazer resumo"). A resposta DEVE ser um JSON array. Cada objeto no array deve ter as seguintes chaves: "Dia", "Disciplina", "Tópico" e "Atividade Sugerida". Não inclua nenhum texto ou formatação fora do JSON.`,
		s.Objective, s.Goal,
		strings.Join(s.Days, ", "), strings.Join(s.Periods, ", "),
		s.Strengths, s.Weaknesses)
}

// Generate 生成新计划并覆盖旧计划，同时保存表单设置
func (s *StudyPlanService) Generate(ctx context.Context, userID string, settings model.StudyPlanSettings) (model.StudyPlan, error) {
	if strings.TrimSpace(settings.Objective) == "" {
		return nil, util.ErrInvalidInput
	}

	var plan model.StudyPlan
	err := runGuarded(ctx, s.guard, userID, util.FeaturePlan, func() error {
		text, err := s.ai.Generate(ctx, GenerateRequest{
			Feature: util.FeaturePlan,
			Prompt:  studyPlanPrompt(settings),
			Schema:  studyPlanSchema,
		})
		if err != nil {
			return err
		}

		decoded, ok := DecodeJSON[model.StudyPlan](text)
		if !ok || len(decoded) == 0 {
			return util.ErrEmptyResult
		}
		plan = decoded

		if err := s.store.SaveJSON(ctx, userID, model.KeyStudyPlan, plan); err != nil {
			return err
		}
		return s.store.SaveJSON(ctx, userID, model.KeyStudyPlanSettings, settings)
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *StudyPlanService) Get(ctx context.Context, userID string) (model.StudyPlan, *model.StudyPlanSettings) {
	plan, _ := LoadJSON[model.StudyPlan](ctx, s.store, userID, model.KeyStudyPlan)
	settings, ok := LoadJSON[model.StudyPlanSettings](ctx, s.store, userID, model.KeyStudyPlanSettings)
	if !ok {
		return plan, nil
	}
	return plan, &settings
}

// TodayFocus 按葡语星期名匹配计划中的 Dia 字段；"Segunda" 与 "segunda-feira" 视为同一天
func (s *StudyPlanService) TodayFocus(ctx context.Context, userID string, now time.Time) string {
	plan, _ := LoadJSON[model.StudyPlan](ctx, s.store, userID, model.KeyStudyPlan)
	return TodayFocus(plan, now)
}

func TodayFocus(plan model.StudyPlan, now time.Time) string {
	today := weekdayStem(weekdaysPT[now.Weekday()])
	for _, d := range plan {
		if weekdayStem(d.Day) == today {
			return fmt.Sprintf("%s: %s", d.Discipline, d.Topic)
		}
	}
	return noFocus
}

func weekdayStem(day string) string {
	day = strings.ToLower(strings.TrimSpace(day))
	day = strings.TrimSuffix(day, "-feira")
	return strings.TrimSuffix(day, " feira")
}

// CopyText 每行 "{Dia} - {Disciplina}: {Tópico} ({Atividade})"
func CopyText(plan model.StudyPlan) string {
	lines := make([]string, 0, len(plan))
	for _, d := range plan {
		lines = append(lines, fmt.Sprintf("%s - %s: %s (%s)", d.Day, d.Discipline, d.Topic, d.SuggestedActivity))
	}
	return strings.Join(lines, "\n")
}

func ExportText(plan model.StudyPlan) string {
	var b strings.Builder
	for _, d := range plan {
		fmt.Fprintf(&b, "Dia: %s\nDisciplina: %s\nTópico: %s\nAtividade: %s\n\n", d.Day, d.Discipline, d.Topic, d.SuggestedActivity)
	}
	return b.String()
}
