package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"
	"study_boost_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 << 10
)

// 上行 SEND/RESET，下行 CHUNK/ERROR/END
const (
	SocketSend  = "SEND"
	SocketReset = "RESET"
	SocketChunk = "CHUNK"
	SocketError = "ERROR"
	SocketEnd   = "END"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// TutorSocketMessage 导师 WebSocket 消息；CHUNK 的 data 为当前累计的回答
type TutorSocketMessage struct {
	Type string `json:"type"`
	Data string `json:"data,omitempty"`
}

// tutorSocket 同一连接只允许一个写者，ping 与回复共用写锁
type tutorSocket struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *tutorSocket) write(msg TutorSocketMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(msg)
}

func (s *tutorSocket) ping() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteMessage(websocket.PingMessage, nil)
}

func socketErrorText(err error) string {
	switch {
	case errors.Is(err, util.ErrInvalidInput):
		return tutorMessages.invalid
	case errors.Is(err, util.ErrRequestInFlight):
		return msgInFlight
	default:
		return service.TutorErrorReply
	}
}

// @Summary 导师对话（WebSocket）
// @Description 与 /tutor/message 相同的对话，适用于需要长连接的客户端；令牌通过 ?token= 传递
// @Tags AI导师
// @Security ApiKeyAuth
// @Param token query string true "JWT 令牌"
// @Router /tutor/ws [get]
func (c *TutorController) Socket(ctx *gin.Context) {
	conn, err := upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Log.Debug("Tutor socket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sock := &tutorSocket{conn: conn}
	userID := currentUserID(ctx)
	// 每秒最多 1 条提问，允许突发 3 条
	limiter := rate.NewLimiter(rate.Every(time.Second), 3)

	reqCtx, cancel := context.WithCancel(ctx.Request.Context())
	defer cancel()

	go func() {
		ticker := time.NewTicker(pingPeriod)
		defer ticker.Stop()
		for {
			select {
			case <-reqCtx.Done():
				return
			case <-ticker.C:
				if err := sock.ping(); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error { return conn.SetReadDeadline(time.Now().Add(pongWait)) })

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.Warn("Tutor socket closed unexpectedly", zap.String("user", userID), zap.Error(err))
			}
			return
		}

		var in TutorSocketMessage
		if err := json.Unmarshal(raw, &in); err != nil {
			sock.write(TutorSocketMessage{Type: SocketError, Data: msgInvalidInput})
			continue
		}

		if !limiter.Allow() {
			sock.write(TutorSocketMessage{Type: SocketError, Data: msgInFlight})
			continue
		}

		switch in.Type {
		case SocketSend:
			_, err := c.TutorService.SendMessage(reqCtx, userID, in.Data, func(accumulated string) {
				sock.write(TutorSocketMessage{Type: SocketChunk, Data: accumulated})
			})
			if err != nil {
				sock.write(TutorSocketMessage{Type: SocketError, Data: socketErrorText(err)})
			}
		case SocketReset:
			if err := c.TutorService.Reset(reqCtx, userID); err != nil {
				logger.Log.Error("Failed to reset tutor history", zap.String("user", userID), zap.Error(err))
				sock.write(TutorSocketMessage{Type: SocketError, Data: service.TutorErrorReply})
			}
		default:
			sock.write(TutorSocketMessage{Type: SocketError, Data: msgInvalidInput})
			continue
		}

		if err := sock.write(TutorSocketMessage{Type: SocketEnd}); err != nil {
			return
		}
		// 生成期间不会读取 pong，处理完后续期
		conn.SetReadDeadline(time.Now().Add(pongWait))
	}
}
