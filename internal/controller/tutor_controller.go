package controller

import (
	"errors"

	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

var tutorMessages = featureMessages{
	invalid: "Por favor, digite uma mensagem.",
	failure: service.TutorErrorReply,
}

type TutorController struct {
	TutorService *service.TutorService
}

func NewTutorController(tutorService *service.TutorService) *TutorController {
	return &TutorController{TutorService: tutorService}
}

type TutorMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

// @Summary 导师对话历史
// @Tags AI导师
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.ChatMessage}
// @Router /tutor/history [get]
func (c *TutorController) GetHistory(ctx *gin.Context) {
	util.Success(ctx, c.TutorService.History(ctx.Request.Context(), currentUserID(ctx)))
}

// @Summary 清空导师对话
// @Tags AI导师
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /tutor/history [delete]
func (c *TutorController) ResetHistory(ctx *gin.Context) {
	if err := c.TutorService.Reset(ctx.Request.Context(), currentUserID(ctx)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 向导师提问（流式）
// @Description SSE 推送：message 事件为当前累计的回答，error 事件为失败提示，end 表示结束
// @Tags AI导师
// @Accept json
// @Produce text/event-stream
// @Security ApiKeyAuth
// @Param body body TutorMessageRequest true "提问内容"
// @Success 200 {string} string "SSE stream"
// @Router /tutor/message [post]
func (c *TutorController) SendMessage(ctx *gin.Context) {
	var req TutorMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, tutorMessages.invalid)
		return
	}

	started := false
	startStream := func() {
		if started {
			return
		}
		started = true
		// 设置SSE响应头
		ctx.Header("Content-Type", "text/event-stream")
		ctx.Header("Cache-Control", "no-cache")
		ctx.Header("Connection", "keep-alive")
		ctx.Header("X-Accel-Buffering", "no")
	}

	_, err := c.TutorService.SendMessage(ctx.Request.Context(), currentUserID(ctx), req.Message, func(accumulated string) {
		startStream()
		ctx.SSEvent("message", accumulated)
		ctx.Writer.Flush()
	})

	if err != nil && !started && !errors.Is(err, util.ErrAIUnavailable) {
		respondError(ctx, err, tutorMessages)
		return
	}

	startStream()
	if err != nil {
		ctx.SSEvent("error", service.TutorErrorReply)
		ctx.Writer.Flush()
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}
