package service

import (
	"context"
	"strings"

	"study_boost_backend/internal/config"
	"study_boost_backend/internal/model"

	"google.golang.org/genai"
)

// GeminiProvider 直接调用 Gemini API，支持结构化输出与 Google 搜索工具
type GeminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context, cfg config.AIConfig) (*GeminiProvider, error) {
	cc := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, err
	}
	return &GeminiProvider{client: client}, nil
}

var geminiTypes = map[SchemaType]genai.Type{
	SchemaString:  genai.TypeString,
	SchemaInteger: genai.TypeInteger,
	SchemaNumber:  genai.TypeNumber,
	SchemaBoolean: genai.TypeBoolean,
	SchemaArray:   genai.TypeArray,
	SchemaObject:  genai.TypeObject,
}

func (s *Schema) genaiSchema() *genai.Schema {
	if s == nil {
		return nil
	}
	out := &genai.Schema{
		Type:     geminiTypes[s.Type],
		Items:    s.Items.genaiSchema(),
		Required: s.Required,
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = p.genaiSchema()
		}
	}
	return out
}

func geminiContent(role, text string) *genai.Content {
	return &genai.Content{Role: role, Parts: []*genai.Part{{Text: text}}}
}

func (p *GeminiProvider) build(req GenerateRequest) ([]*genai.Content, *genai.GenerateContentConfig) {
	contents := make([]*genai.Content, 0, len(req.History)+1)
	for _, h := range req.History {
		role := model.RoleUser
		if h.Role == model.RoleModel {
			role = model.RoleModel
		}
		contents = append(contents, geminiContent(role, h.Text()))
	}
	contents = append(contents, geminiContent(model.RoleUser, req.Prompt))

	cfg := &genai.GenerateContentConfig{}
	if req.SystemInstruction != "" {
		cfg.SystemInstruction = geminiContent(model.RoleUser, req.SystemInstruction)
	}

	// 搜索工具不能与 JSON MIME 同时使用，结果依靠提示词约束为 JSON
	if req.WebSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
		return contents, cfg
	}

	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.Schema.genaiSchema()
	} else if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}
	return contents, cfg
}

func (p *GeminiProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	contents, cfg := p.build(req)
	resp, err := p.client.Models.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Text()), nil
}

func (p *GeminiProvider) GenerateStream(ctx context.Context, req GenerateRequest) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)
	contents, cfg := p.build(req)

	go func() {
		defer close(out)
		defer close(errChan)

		for resp, err := range p.client.Models.GenerateContentStream(ctx, req.Model, contents, cfg) {
			if err != nil {
				errChan <- err
				return
			}
			text := resp.Text()
			if text == "" {
				continue
			}
			select {
			case out <- text:
			case <-ctx.Done():
				errChan <- ctx.Err()
				return
			}
		}
	}()

	return out, errChan
}
