package service

import (
	"context"
	"fmt"
	"strings"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"
)

// 支持的作文类型
var WritingKinds = []string{"ENEM", "Dissertação Argumentativa", "Artigo de Opinião"}

var writingSchema = &Schema{
	Type: SchemaObject,
	Properties: map[string]*Schema{
		"notaGeral":         IntegerSchema(),
		"pontosFortes":      ArrayOf(StringSchema()),
		"areasParaMelhorar": ArrayOf(StringSchema()),
		"paragrafoRevisado": StringSchema(),
		"analisePorCriterio": ArrayOf(ObjectSchema(map[string]*Schema{
			"criterio":   StringSchema(),
			"nota":       IntegerSchema(),
			"comentario": StringSchema(),
		})),
	},
	Required: []string{"areasParaMelhorar", "notaGeral", "paragrafoRevisado", "pontosFortes"},
}

type WritingService struct {
	ai    *AIService
	guard InFlightGuard
}

func NewWritingService(ai *AIService, guard InFlightGuard) *WritingService {
	return &WritingService{ai: ai, guard: guard}
}

func writingPrompt(text, kind string) string {
	return fmt.Sprintf("Analise a seguinte redação do tipo \"%s\":\n\n\"%s\"\n\nForneça uma análise estruturada como um objeto JSON com as chaves: 'notaGeral' (0-1000), 'pontosFortes' (array de strings), 'areasParaMelhorar' (array de strings), e 'paragrafoRevisado' (uma versão melhorada de um parágrafo). Se possível, inclua também 'analisePorCriterio' (array de objetos com 'criterio', 'nota' e 'comentario').",
		kind, text)
}

func validWritingKind(kind string) bool {
	for _, k := range WritingKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// Analyze 使用更强的模型批改作文
func (s *WritingService) Analyze(ctx context.Context, userID, text, kind string) (*model.WritingAnalysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, util.ErrInvalidInput
	}
	if kind == "" {
		kind = WritingKinds[0]
	}
	if !validWritingKind(kind) {
		return nil, util.ErrInvalidInput
	}

	var analysis *model.WritingAnalysis
	err := runGuarded(ctx, s.guard, userID, util.FeatureWriting, func() error {
		out, err := s.ai.Generate(ctx, GenerateRequest{
			Feature: util.FeatureWriting,
			Model:   s.ai.ProModel(),
			Prompt:  writingPrompt(text, kind),
			Schema:  writingSchema,
		})
		if err != nil {
			return err
		}
		decoded, ok := DecodeJSON[model.WritingAnalysis](out)
		if !ok {
			return util.ErrEmptyResult
		}
		analysis = &decoded
		return nil
	})
	if err != nil {
		return nil, err
	}
	return analysis, nil
}
