package service

import (
	"context"
	"fmt"
	"strings"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"

	"github.com/google/uuid"
)

type MindMapService struct {
	ai    *AIService
	guard InFlightGuard
}

func NewMindMapService(ai *AIService, guard InFlightGuard) *MindMapService {
	return &MindMapService{ai: ai, guard: guard}
}

func mindMapPrompt(topic string) string {
	return fmt.Sprintf("Crie uma estrutura de mapa mental para o tópico central \"%s\". A resposta deve ser um objeto JSON aninhado. O objeto raiz deve ter 'id' (string), 'topic' (string), e 'children' (um array de objetos com a mesma estrutura). Crie 2 a 3 níveis de profundidade.", topic)
}

func (s *MindMapService) Generate(ctx context.Context, userID, topic string) (*model.MindMapNode, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, util.ErrInvalidInput
	}

	var root *model.MindMapNode
	err := runGuarded(ctx, s.guard, userID, util.FeatureMindMap, func() error {
		// 递归结构无法用固定 schema 描述，只要求 JSON 输出
		text, err := s.ai.Generate(ctx, GenerateRequest{
			Feature: util.FeatureMindMap,
			Prompt:  mindMapPrompt(topic),
			JSON:    true,
		})
		if err != nil {
			return err
		}
		decoded, ok := DecodeJSON[*model.MindMapNode](text)
		if !ok || decoded == nil || decoded.Topic == "" {
			return util.ErrEmptyResult
		}
		root = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}

	FillMindMapIDs(root)
	return root, nil
}

// FillMindMapIDs 给缺少 id 或 id 重复的节点补上新 id
func FillMindMapIDs(root *model.MindMapNode) {
	seen := map[string]bool{}
	root.Walk(func(n *model.MindMapNode) {
		if n.ID == "" || seen[n.ID] {
			n.ID = uuid.NewString()
		}
		seen[n.ID] = true
	})
}
