package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"study_boost_backend/internal/config"
	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"
	"study_boost_backend/pkg/logger"
	"study_boost_backend/pkg/monitoring"
	"study_boost_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

type SchemaType string

const (
	SchemaString  SchemaType = "string"
	SchemaInteger SchemaType = "integer"
	SchemaNumber  SchemaType = "number"
	SchemaBoolean SchemaType = "boolean"
	SchemaArray   SchemaType = "array"
	SchemaObject  SchemaType = "object"
)

// Schema 结构化输出描述，要求模型按固定字段返回 JSON
type Schema struct {
	Type       SchemaType
	Items      *Schema
	Properties map[string]*Schema
	Required   []string
}

func ObjectSchema(props map[string]*Schema) *Schema {
	required := make([]string, 0, len(props))
	for name := range props {
		required = append(required, name)
	}
	sort.Strings(required)
	return &Schema{Type: SchemaObject, Properties: props, Required: required}
}

func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: SchemaArray, Items: items}
}

func StringSchema() *Schema  { return &Schema{Type: SchemaString} }
func IntegerSchema() *Schema { return &Schema{Type: SchemaInteger} }

// GenerateRequest 一次模型调用
type GenerateRequest struct {
	Feature           string
	Model             string
	Prompt            string
	SystemInstruction string
	// Schema 非空时要求结构化 JSON；JSON 为 true 时只要求 JSON MIME
	Schema    *Schema
	JSON      bool
	WebSearch bool
	History   []model.ChatMessage
}

// AIProvider 具体的模型后端
type AIProvider interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
	GenerateStream(ctx context.Context, req GenerateRequest) (<-chan string, <-chan error)
}

type AIService struct {
	mu       sync.RWMutex
	config   config.AIConfig
	provider AIProvider
}

func NewAIService(ctx context.Context, cfg config.AIConfig) (*AIService, error) {
	provider, err := newProvider(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &AIService{config: cfg, provider: provider}, nil
}

// NewAIServiceWithProvider 测试或自定义后端时使用
func NewAIServiceWithProvider(cfg config.AIConfig, provider AIProvider) *AIService {
	return &AIService{config: cfg, provider: provider}
}

func newProvider(ctx context.Context, cfg config.AIConfig) (AIProvider, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIProvider(cfg), nil
	case "gemini", "":
		return NewGeminiProvider(ctx, cfg)
	default:
		return nil, fmt.Errorf("unknown ai provider %q", cfg.Provider)
	}
}

// UpdateConfig 配置热更新回调，只在 ai 段变化时重建后端
func (s *AIService) UpdateConfig(cfg *config.Config) {
	s.mu.RLock()
	same := s.config == cfg.AI
	s.mu.RUnlock()
	if same {
		return
	}

	provider, err := newProvider(context.Background(), cfg.AI)
	if err != nil {
		logger.Log.Error("Failed to rebuild ai provider", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.config = cfg.AI
	s.provider = provider
	s.mu.Unlock()
	logger.Log.Info("AI provider reloaded", zap.String("provider", cfg.AI.Provider), zap.String("model", cfg.AI.Model))
}

func (s *AIService) ProModel() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config.ProModel
}

func (s *AIService) current(req *GenerateRequest) AIProvider {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if req.Model == "" {
		req.Model = s.config.Model
	}
	return s.provider
}

// Generate 调用一次模型并返回原始文本，失败统一包装为 ErrAIUnavailable
func (s *AIService) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	provider := s.current(&req)
	started := time.Now()

	ctx, span := tracing.Tracer.Start(ctx, "ai.generate", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()
	span.SetAttributes(
		attribute.String("ai.feature", req.Feature),
		attribute.String("ai.model", req.Model),
		attribute.Bool("ai.web_search", req.WebSearch),
	)

	text, err := provider.Generate(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		monitoring.ObserveAI(req.Feature, "error", started)
		logger.Log.Error("AI request failed",
			zap.String("feature", req.Feature),
			zap.String("model", req.Model),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", util.ErrAIUnavailable, err)
	}

	outcome := "ok"
	if strings.TrimSpace(text) == "" {
		outcome = "empty"
	}
	monitoring.ObserveAI(req.Feature, outcome, started)
	logger.Log.Debug("AI request completed",
		zap.String("feature", req.Feature),
		zap.Duration("elapsed", time.Since(started)),
		zap.Int("chars", len(text)))
	return text, nil
}

// GenerateStream 返回按到达顺序排列的文本片段；out 关闭后从 errc 读取结果
func (s *AIService) GenerateStream(ctx context.Context, req GenerateRequest) (<-chan string, <-chan error) {
	provider := s.current(&req)
	started := time.Now()

	ctx, span := tracing.Tracer.Start(ctx, "ai.stream", trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("ai.feature", req.Feature),
		attribute.String("ai.model", req.Model),
	)

	in, inErr := provider.GenerateStream(ctx, req)
	out := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(out)
		defer close(errc)
		defer span.End()

		for chunk := range in {
			select {
			case out <- chunk:
			case <-ctx.Done():
				// 消费方已离开，继续排空上游
			}
		}

		if err := <-inErr; err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			monitoring.ObserveAI(req.Feature, "error", started)
			logger.Log.Error("AI stream failed", zap.String("feature", req.Feature), zap.Error(err))
			errc <- fmt.Errorf("%w: %v", util.ErrAIUnavailable, err)
			return
		}
		monitoring.ObserveAI(req.Feature, "ok", started)
	}()

	return out, errc
}
