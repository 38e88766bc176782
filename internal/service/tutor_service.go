package service

import (
	"context"
	"strings"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"
	"study_boost_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	tutorInstruction = "Você é um tutor IA para estudantes brasileiros. Seja amigável, didático e ajude a explicar conceitos complexos de forma simples."
	TutorErrorReply  = "Desculpe, ocorreu um erro. Tente novamente."
)

type TutorService struct {
	ai    *AIService
	store *StoreService
	guard InFlightGuard
}

func NewTutorService(ai *AIService, store *StoreService, guard InFlightGuard) *TutorService {
	return &TutorService{ai: ai, store: store, guard: guard}
}

func (s *TutorService) History(ctx context.Context, userID string) []model.ChatMessage {
	history, ok := LoadJSON[[]model.ChatMessage](ctx, s.store, userID, model.KeyTutorHistory)
	if !ok {
		return []model.ChatMessage{}
	}
	return history
}

func (s *TutorService) Reset(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, userID, model.KeyTutorHistory)
}

// SendMessage 追加用户消息并流式生成回复，每收到一段就用累计文本回调 onChunk。
// AI 失败时历史末尾追加固定的错误回复，同时返回错误。
func (s *TutorService) SendMessage(ctx context.Context, userID, text string, onChunk func(accumulated string)) ([]model.ChatMessage, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, util.ErrInvalidInput
	}

	var history []model.ChatMessage
	var sendErr error
	err := runGuarded(ctx, s.guard, userID, util.FeatureTutor, func() error {
		previous := s.History(ctx, userID)

		prior := make([]model.ChatMessage, 0, len(previous))
		for _, m := range previous {
			if m.Text() != "" {
				prior = append(prior, m)
			}
		}

		history = append(previous, model.NewChatMessage(model.RoleUser, text))
		history = append(history, model.NewChatMessage(model.RoleModel, ""))
		last := len(history) - 1

		chunks, errc := s.ai.GenerateStream(ctx, GenerateRequest{
			Feature:           util.FeatureTutor,
			Prompt:            text,
			SystemInstruction: tutorInstruction,
			History:           prior,
		})

		var reply strings.Builder
		for chunk := range chunks {
			reply.WriteString(chunk)
			history[last] = model.NewChatMessage(model.RoleModel, reply.String())
			if onChunk != nil {
				onChunk(reply.String())
			}
		}

		if sendErr = <-errc; sendErr != nil {
			if reply.Len() == 0 {
				history = history[:last]
			}
			history = append(history, model.NewChatMessage(model.RoleModel, TutorErrorReply))
		}

		// 客户端断开后仍保存已有的对话
		if err := s.store.SaveJSON(context.WithoutCancel(ctx), userID, model.KeyTutorHistory, history); err != nil {
			logger.Log.Error("Failed to save tutor history", zap.String("user", userID), zap.Error(err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return history, sendErr
}
