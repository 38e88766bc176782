package service

import (
	"context"
	"strings"

	"study_boost_backend/internal/util"
	"study_boost_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	tipPrompt   = "Gere uma dica de estudo curta e inspiradora ou uma frase motivacional para um estudante brasileiro se preparando para concursos. Seja breve e direto."
	fallbackTip = "Estudar é o caminho para um futuro brilhante. Continue firme!"
)

type DailyTip struct {
	Tip    string `json:"tip"`
	Source string `json:"source"` // ai | quote | default
}

type TipService struct {
	ai         *AIService
	motivation *MotivationService
}

func NewTipService(ai *AIService, motivation *MotivationService) *TipService {
	return &TipService{ai: ai, motivation: motivation}
}

// DailyTip AI 失败时依次退回当前激励短句和固定文案，不向调用方返回错误
func (s *TipService) DailyTip(ctx context.Context) DailyTip {
	text, err := s.ai.Generate(ctx, GenerateRequest{Feature: util.FeatureTip, Prompt: tipPrompt})
	if err == nil && strings.TrimSpace(text) != "" {
		return DailyTip{Tip: strings.TrimSpace(text), Source: "ai"}
	}
	if err != nil {
		logger.Log.Warn("Falling back from ai daily tip", zap.Error(err))
	}

	if s.motivation != nil {
		if quote, err := s.motivation.GetCurrentMotivation(); err == nil && quote != "" {
			return DailyTip{Tip: quote, Source: "quote"}
		}
	}
	return DailyTip{Tip: fallbackTip, Source: "default"}
}
