package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"study_boost_backend/internal/config"
	"study_boost_backend/internal/middleware"
	"study_boost_backend/internal/repository"
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"
	"study_boost_backend/pkg/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// scriptedProvider 按功能返回固定回复
type scriptedProvider struct {
	mu      sync.Mutex
	replies map[string]string
	chunks  []string
	err     error
}

func (p *scriptedProvider) Generate(_ context.Context, req service.GenerateRequest) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return "", p.err
	}
	return p.replies[req.Feature], nil
}

func (p *scriptedProvider) GenerateStream(_ context.Context, _ service.GenerateRequest) (<-chan string, <-chan error) {
	out := make(chan string, len(p.chunks))
	errc := make(chan error, 1)
	for _, c := range p.chunks {
		out <- c
	}
	close(out)
	errc <- p.err
	close(errc)
	return out, errc
}

type testServer struct {
	router   *gin.Engine
	provider *scriptedProvider
	token    string
	exports  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWT:     config.JWTConfig{Secret: "test-secret", ExpireTime: time.Hour},
		AI:      config.AIConfig{Provider: "gemini", Model: "flash", ProModel: "pro"},
		Storage: config.StorageConfig{Type: util.StorageLocal, LocalPath: t.TempDir()},
	}

	provider := &scriptedProvider{replies: map[string]string{}}
	ai := service.NewAIServiceWithProvider(cfg.AI, provider)
	store := service.NewStoreService(repository.NewStoreRepository(db))
	guard := service.NewMemoryGuard()
	quotes := service.NewMotivationService(repository.NewMotivationRepository(db))
	storage := service.NewStorageService(cfg)

	plan := service.NewStudyPlanService(ai, store, guard)
	calendar := service.NewCalendarService(ai, store, guard, quotes)
	auth := service.NewAuthService(cfg)

	authCtl := NewAuthController(auth)
	planCtl := NewStudyPlanController(plan, storage)
	tutorCtl := NewTutorController(service.NewTutorService(ai, store, guard))
	quizCtl := NewQuizController(service.NewQuizService(ai, store, guard))
	flashCtl := NewFlashcardController(service.NewFlashcardService(ai, store, guard), storage)
	calCtl := NewCalendarController(calendar)
	progressCtl := NewProgressController(service.NewProgressService(store, calendar))
	notepadCtl := NewNotepadController(service.NewNotepadService(store, plan), storage)
	writingCtl := NewWritingController(service.NewWritingService(ai, guard))

	r := gin.New()
	r.POST("/api/login", authCtl.Login)
	api := r.Group("/api", middleware.AuthMiddleware(cfg))
	api.GET("/profile", authCtl.GetProfile)
	api.GET("/plan", planCtl.GetPlan)
	api.POST("/plan", planCtl.GeneratePlan)
	api.GET("/plan/export", planCtl.ExportPlan)
	api.POST("/tutor/message", tutorCtl.SendMessage)
	api.GET("/tutor/ws", tutorCtl.Socket)
	api.POST("/quiz/start", quizCtl.Start)
	api.POST("/quiz/select", quizCtl.Select)
	api.POST("/quiz/confirm", quizCtl.Confirm)
	api.GET("/flashcards/export", flashCtl.Export)
	api.GET("/calendar", calCtl.GetMonth)
	api.POST("/calendar/toggle", calCtl.ToggleDay)
	api.GET("/progress", progressCtl.GetSummary)
	api.PUT("/notepad", notepadCtl.SaveContent)
	api.PUT("/notepad/position", notepadCtl.SavePosition)
	api.GET("/notepad/export", notepadCtl.Export)
	api.POST("/writing/analyze", middleware.ProMiddleware(), writingCtl.Analyze)

	token, _, err := auth.Login("Aluno@Escola.com")
	require.NoError(t, err)

	return &testServer{router: r, provider: provider, token: token, exports: cfg.Storage.LocalPath}
}

func (s *testServer) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) (util.Response, map[string]interface{}) {
	t.Helper()
	var resp util.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp.Data.(map[string]interface{})
	return resp, data
}

func TestRequiresToken(t *testing.T) {
	s := newTestServer(t)
	s.token = ""
	w := s.do(http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginAndProfile(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/login", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.NotEmpty(t, data["token"])

	w = s.do(http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, data = decode(t, w)
	assert.Equal(t, "aluno@escola.com", data["id"])
	assert.Equal(t, true, data["isLifetime"])
}

func TestPlanGenerateAndExport(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/plan/export", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	s.provider.replies[util.FeaturePlan] = `[{"Dia":"Segunda-feira","Disciplina":"Física","Tópico":"Leis de Newton","Atividade Sugerida":"Resolver 20 exercícios"}]`
	w = s.do(http.MethodPost, "/api/plan", map[string]interface{}{"objetivo": "ENEM", "dias": []string{"Segunda"}})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/plan/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "plano_de_estudos.txt")
	assert.Contains(t, w.Body.String(), "Tópico: Leis de Newton")

	// ?store=true 保存到本地存储并返回地址
	w = s.do(http.MethodGet, "/api/plan/export?store=true", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	url, _ := data["url"].(string)
	require.True(t, strings.HasPrefix(url, "/exports/aluno_at_escola.com/"))
	_, err := os.Stat(filepath.Join(s.exports, strings.TrimPrefix(url, "/exports/")))
	assert.NoError(t, err)
}

func TestPlanGenerateMapsErrors(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/plan", map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	s.provider.replies[util.FeaturePlan] = "sem json"
	w = s.do(http.MethodPost, "/api/plan", map[string]interface{}{"objetivo": "ENEM"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	s.provider.err = errors.New("upstream down")
	w = s.do(http.MethodPost, "/api/plan", map[string]interface{}{"objetivo": "ENEM"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestTutorMessageStreamsEvents(t *testing.T) {
	s := newTestServer(t)
	s.provider.chunks = []string{"Olá", ", estudante!"}

	w := s.do(http.MethodPost, "/api/tutor/message", map[string]string{"message": "Oi"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.Contains(t, body, "event:message\ndata:Olá\n")
	assert.Contains(t, body, "event:message\ndata:Olá, estudante!\n")
	assert.Contains(t, body, "event:end\n")
	assert.NotContains(t, body, "event:error")
}

func TestTutorMessageFailureSendsErrorEvent(t *testing.T) {
	s := newTestServer(t)
	s.provider.err = errors.New("timeout")

	w := s.do(http.MethodPost, "/api/tutor/message", map[string]string{"message": "Oi"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "event:error\ndata:"+service.TutorErrorReply)

	w = s.do(http.MethodPost, "/api/tutor/message", map[string]string{"message": ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuizFlowOverHTTP(t *testing.T) {
	s := newTestServer(t)
	s.provider.replies[util.FeatureQuiz] = `[{"pergunta":"2+2?","opcoes":["3","4","5","6"],"respostaCorreta":1}]`

	w := s.do(http.MethodPost, "/api/quiz/confirm", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = s.do(http.MethodPost, "/api/quiz/start", map[string]interface{}{"discipline": "Matemática", "topic": "Soma", "count": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/quiz/start", map[string]interface{}{"discipline": "Matemática", "topic": "Soma"})
	require.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, "quiz", data["state"])

	w = s.do(http.MethodPost, "/api/quiz/select", map[string]interface{}{"option": 1})
	require.Equal(t, http.StatusOK, w.Code)
	w = s.do(http.MethodPost, "/api/quiz/confirm", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, data = decode(t, w)
	assert.Equal(t, float64(1), data["score"])
	assert.Equal(t, float64(100), data["percentage"])
}

func TestFlashcardExportWithoutCards(t *testing.T) {
	s := newTestServer(t)
	w := s.do(http.MethodGet, "/api/flashcards/export", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCalendarToggleAndProgress(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodGet, "/api/calendar?year=2024&month=13", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/calendar/toggle", map[string]int{"year": 2024, "month": 11, "day": 3})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/calendar?year=2024&month=11", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, "2024-10", data["key"])
	assert.Equal(t, map[string]interface{}{"3": true}, data["studiedDays"])
	assert.NotEmpty(t, data["quote"])

	w = s.do(http.MethodGet, "/api/progress", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, data = decode(t, w)
	assert.Equal(t, float64(1), data["totalStudiedDays"])
	assert.Equal(t, float64(0), data["totalQuizzes"])
}

func TestNotepadPositionAndExport(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPut, "/api/notepad", map[string]string{"content": "Revisar matrizes"})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPut, "/api/notepad/position", map[string]interface{}{
		"target":      "fab",
		"pointerDown": map[string]float64{"x": 15, "y": 15},
		"origin":      map[string]float64{"x": 10, "y": 10},
		"pointerUp":   map[string]float64{"x": 105, "y": 55},
	})
	require.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, map[string]interface{}{"x": float64(100), "y": float64(50)}, data)

	w = s.do(http.MethodPut, "/api/notepad/position", map[string]interface{}{"target": "sidebar"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodGet, "/api/notepad/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Revisar matrizes", w.Body.String())

	w = s.do(http.MethodGet, "/api/notepad/export?format=pdf", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, util.MimePDF, w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	w = s.do(http.MethodGet, "/api/notepad/export?format=docx", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWritingAnalyzeOverHTTP(t *testing.T) {
	s := newTestServer(t)
	s.provider.replies[util.FeatureWriting] = `{"notaGeral":880,"pontosFortes":["Repertório"],"areasParaMelhorar":[],"paragrafoRevisado":"..."}`

	w := s.do(http.MethodPost, "/api/writing/analyze", map[string]string{"text": "Redação", "type": "ENEM"})
	require.Equal(t, http.StatusOK, w.Code)
	_, data := decode(t, w)
	assert.Equal(t, float64(880), data["notaGeral"])
}
