package service

import (
	"context"
	"os"
	"sort"
	"sync"
	"testing"

	"study_boost_backend/internal/config"
	"study_boost_backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.InitNop()
	os.Exit(m.Run())
}

// fakeProvider 按顺序返回预设回复，并记录收到的请求
type fakeProvider struct {
	mu        sync.Mutex
	replies   []string
	err       error
	chunks    []string
	streamErr error
	requests  []GenerateRequest
}

func (p *fakeProvider) Generate(_ context.Context, req GenerateRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.requests = append(p.requests, req)
	if p.err != nil {
		return "", p.err
	}
	if len(p.replies) == 0 {
		return "", nil
	}
	reply := p.replies[0]
	p.replies = p.replies[1:]
	return reply, nil
}

func (p *fakeProvider) GenerateStream(_ context.Context, req GenerateRequest) (<-chan string, <-chan error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	chunks := append([]string(nil), p.chunks...)
	streamErr := p.streamErr
	p.mu.Unlock()

	out := make(chan string, len(chunks))
	errc := make(chan error, 1)
	for _, c := range chunks {
		out <- c
	}
	close(out)
	errc <- streamErr
	close(errc)
	return out, errc
}

func (p *fakeProvider) lastRequest() GenerateRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.requests[len(p.requests)-1]
}

func newTestAI(p *fakeProvider) *AIService {
	return NewAIServiceWithProvider(config.AIConfig{
		Provider: "gemini",
		Model:    "flash-test",
		ProModel: "pro-test",
	}, p)
}

// memoryStore 测试用的内存 KVStore
type memoryStore struct {
	mu   sync.Mutex
	data map[string]map[string]string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]map[string]string{}}
}

func (m *memoryStore) Get(_ context.Context, userID, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[userID][key]
	return v, ok, nil
}

func (m *memoryStore) Set(_ context.Context, userID, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[userID] == nil {
		m.data[userID] = map[string]string{}
	}
	m.data[userID][key] = value
	return nil
}

func (m *memoryStore) Delete(_ context.Context, userID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data[userID], key)
	return nil
}

func (m *memoryStore) Keys(_ context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data[userID]))
	for k := range m.data[userID] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

type fixedQuote string

func (q fixedQuote) RandomQuote() string { return string(q) }
