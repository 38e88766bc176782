package controller

import (
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type NotepadController struct {
	NotepadService *service.NotepadService
	StorageService *service.StorageService
}

func NewNotepadController(notepadService *service.NotepadService, storageService *service.StorageService) *NotepadController {
	return &NotepadController{NotepadService: notepadService, StorageService: storageService}
}

type NotepadContentRequest struct {
	Content string `json:"content"`
}

// PositionRequest 直接给出 position，或给出一次拖拽的按下点、原位置与松开点
type PositionRequest struct {
	Target      string          `json:"target" binding:"required,oneof=fab notepad"`
	Position    *model.Position `json:"position"`
	PointerDown *model.Position `json:"pointerDown"`
	Origin      *model.Position `json:"origin"`
	PointerUp   *model.Position `json:"pointerUp"`
}

// @Summary 获取笔记
// @Description 笔记内容、悬浮按钮与面板位置、今日重点
// @Tags 笔记
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.Notepad}
// @Router /notepad [get]
func (c *NotepadController) Get(ctx *gin.Context) {
	util.Success(ctx, c.NotepadService.Get(ctx.Request.Context(), currentUserID(ctx), time.Now()))
}

// @Summary 保存笔记
// @Tags 笔记
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body NotepadContentRequest true "笔记内容"
// @Success 200 {object} util.Response
// @Router /notepad [put]
func (c *NotepadController) SaveContent(ctx *gin.Context) {
	var req NotepadContentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, msgInvalidInput)
		return
	}
	if err := c.NotepadService.SaveContent(ctx.Request.Context(), currentUserID(ctx), req.Content); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 保存位置
// @Tags 笔记
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body PositionRequest true "目标与位置"
// @Success 200 {object} util.Response{data=model.Position}
// @Router /notepad/position [put]
func (c *NotepadController) SavePosition(ctx *gin.Context) {
	var req PositionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, msgInvalidInput)
		return
	}

	userID := currentUserID(ctx)
	switch {
	case req.Position != nil:
		if err := c.NotepadService.SavePosition(ctx.Request.Context(), userID, req.Target, *req.Position); err != nil {
			respondError(ctx, err, featureMessages{})
			return
		}
		util.Success(ctx, req.Position)
	case req.PointerDown != nil && req.Origin != nil && req.PointerUp != nil:
		pos, err := c.NotepadService.SaveDrag(ctx.Request.Context(), userID, req.Target, *req.PointerDown, *req.Origin, *req.PointerUp)
		if err != nil {
			respondError(ctx, err, featureMessages{})
			return
		}
		util.Success(ctx, pos)
	default:
		util.BadRequest(ctx, msgInvalidInput)
	}
}

// @Summary 导出笔记
// @Description format=txt 导出 anotacoes.txt，format=pdf 导出 anotacoes.pdf
// @Tags 笔记
// @Produce octet-stream
// @Security ApiKeyAuth
// @Param format query string false "txt 或 pdf"
// @Param store query bool false "保存到存储并返回地址"
// @Success 200 {file} file
// @Router /notepad/export [get]
func (c *NotepadController) Export(ctx *gin.Context) {
	userID := currentUserID(ctx)
	switch ctx.DefaultQuery("format", "txt") {
	case "txt":
		sendExport(ctx, c.StorageService, service.NotepadTextFile, util.MimeText, c.NotepadService.ExportText(ctx.Request.Context(), userID))
	case "pdf":
		data, err := c.NotepadService.ExportPDF(ctx.Request.Context(), userID)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		sendExport(ctx, c.StorageService, service.NotepadPDFFile, util.MimePDF, data)
	default:
		util.BadRequest(ctx, "Formato inválido. Use txt ou pdf.")
	}
}
