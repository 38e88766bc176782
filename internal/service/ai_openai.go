package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"study_boost_backend/internal/config"
	"study_boost_backend/internal/model"
	"study_boost_backend/pkg/logger"

	"go.uber.org/zap"
)

// OpenAIProvider 兼容 OpenAI /chat/completions 的后端（Gemini 也提供该兼容端点）
type OpenAIProvider struct {
	config config.AIConfig
	client *http.Client
}

func NewOpenAIProvider(cfg config.AIConfig) *OpenAIProvider {
	return &OpenAIProvider{config: cfg, client: &http.Client{}}
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model          string          `json:"model"`
	Messages       []AIChatMessage `json:"messages"`
	Stream         bool            `json:"stream,omitempty"`
	ResponseFormat map[string]any  `json:"response_format,omitempty"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
		Delta   AIChatMessage `json:"delta"` // 流式响应
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *Schema) jsonSchema() map[string]any {
	if s == nil {
		return nil
	}
	out := map[string]any{"type": string(s.Type)}
	if s.Items != nil {
		out["items"] = s.Items.jsonSchema()
	}
	if len(s.Properties) > 0 {
		props := make(map[string]any, len(s.Properties))
		for name, p := range s.Properties {
			props[name] = p.jsonSchema()
		}
		out["properties"] = props
	}
	if len(s.Required) > 0 {
		out["required"] = s.Required
	}
	return out
}

func (p *OpenAIProvider) buildRequest(req GenerateRequest, stream bool) ChatCompletionRequest {
	messages := []AIChatMessage{}
	if req.SystemInstruction != "" {
		messages = append(messages, AIChatMessage{Role: "system", Content: req.SystemInstruction})
	}

	// 多轮对话历史，model 角色映射为 assistant
	for _, h := range req.History {
		role := h.Role
		if role == model.RoleModel {
			role = "assistant"
		}
		messages = append(messages, AIChatMessage{Role: role, Content: h.Text()})
	}

	messages = append(messages, AIChatMessage{Role: "user", Content: req.Prompt})

	body := ChatCompletionRequest{
		Model:    req.Model,
		Messages: messages,
		Stream:   stream,
	}

	switch {
	case req.Schema != nil:
		name := req.Feature
		if name == "" {
			name = "response"
		}
		body.ResponseFormat = map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   name,
				"schema": req.Schema.jsonSchema(),
			},
		}
	case req.JSON:
		body.ResponseFormat = map[string]any{"type": "json_object"}
	}

	if req.WebSearch {
		logger.Log.Debug("web search is not available on the openai-compatible provider", zap.String("feature", req.Feature))
	}

	return body
}

func (p *OpenAIProvider) post(ctx context.Context, body ChatCompletionRequest) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimRight(p.config.BaseURL, "/")+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.config.APIKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		data, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(data))
	}
	return resp, nil
}

func (p *OpenAIProvider) Generate(ctx context.Context, req GenerateRequest) (string, error) {
	resp, err := p.post(ctx, p.buildRequest(req, false))
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var result ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	if result.Error != nil {
		return "", fmt.Errorf("AI API error: %s", result.Error.Message)
	}

	if len(result.Choices) > 0 {
		return result.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("AI returned no choices")
}

func (p *OpenAIProvider) GenerateStream(ctx context.Context, req GenerateRequest) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)
	body := p.buildRequest(req, true)

	go func() {
		defer close(out)
		defer close(errChan)

		resp, err := p.post(ctx, body)
		if err != nil {
			errChan <- err
			return
		}
		defer resp.Body.Close()

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					errChan <- err
				}
				return
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				return
			}

			var streamResp ChatCompletionResponse
			if err := json.Unmarshal([]byte(data), &streamResp); err != nil {
				continue
			}

			if streamResp.Error != nil {
				errChan <- fmt.Errorf("AI API error: %s", streamResp.Error.Message)
				return
			}

			if len(streamResp.Choices) > 0 {
				if content := streamResp.Choices[0].Delta.Content; content != "" {
					select {
					case out <- content:
					case <-ctx.Done():
						errChan <- ctx.Err()
						return
					}
				}
			}
		}
	}()

	return out, errChan
}
