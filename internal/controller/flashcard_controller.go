package controller

import (
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/session"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

var flashcardMessages = featureMessages{
	invalid: "Preencha a disciplina, o tópico e escolha entre 5 e 25 cartões.",
	empty:   "Não foi possível gerar os flashcards. Tente um tópico diferente.",
	failure: "Erro ao comunicar com a IA. Tente novamente.",
}

type FlashcardController struct {
	FlashcardService *service.FlashcardService
	StorageService   *service.StorageService
}

func NewFlashcardController(flashcardService *service.FlashcardService, storageService *service.StorageService) *FlashcardController {
	return &FlashcardController{FlashcardService: flashcardService, StorageService: storageService}
}

type FlashcardEvaluateRequest struct {
	Correct *bool `json:"correct" binding:"required"`
}

type FlashcardView struct {
	*session.FlashcardDeck
	Percentage int `json:"percentage"`
}

func flashcardView(d *session.FlashcardDeck) FlashcardView {
	return FlashcardView{FlashcardDeck: d, Percentage: d.Percentage()}
}

func (c *FlashcardController) reply(ctx *gin.Context, d *session.FlashcardDeck, err error) {
	if err != nil {
		respondError(ctx, err, flashcardMessages)
		return
	}
	util.Success(ctx, flashcardView(d))
}

// @Summary 当前闪卡状态
// @Tags 闪卡
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=FlashcardView}
// @Router /flashcards [get]
func (c *FlashcardController) GetSession(ctx *gin.Context) {
	util.Success(ctx, flashcardView(c.FlashcardService.Get(ctx.Request.Context(), currentUserID(ctx))))
}

// @Summary 生成闪卡
// @Description 卡片数量 5-25，默认 10
// @Tags 闪卡
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SessionStartRequest true "学科、主题、数量"
// @Success 200 {object} util.Response{data=FlashcardView}
// @Failure 409 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /flashcards/start [post]
func (c *FlashcardController) Start(ctx *gin.Context) {
	var req SessionStartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, flashcardMessages.invalid)
		return
	}
	d, err := c.FlashcardService.Start(ctx.Request.Context(), currentUserID(ctx), req.Discipline, req.Topic, req.Count)
	c.reply(ctx, d, err)
}

// @Summary 翻转卡片
// @Tags 闪卡
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=FlashcardView}
// @Router /flashcards/flip [post]
func (c *FlashcardController) Flip(ctx *gin.Context) {
	d, err := c.FlashcardService.Flip(ctx.Request.Context(), currentUserID(ctx))
	c.reply(ctx, d, err)
}

// @Summary 自评
// @Description 翻面后标记答对或答错并进入下一张
// @Tags 闪卡
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body FlashcardEvaluateRequest true "是否答对"
// @Success 200 {object} util.Response{data=FlashcardView}
// @Router /flashcards/evaluate [post]
func (c *FlashcardController) Evaluate(ctx *gin.Context) {
	var req FlashcardEvaluateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, msgInvalidInput)
		return
	}
	d, err := c.FlashcardService.Evaluate(ctx.Request.Context(), currentUserID(ctx), *req.Correct)
	c.reply(ctx, d, err)
}

// @Summary 重新开始
// @Tags 闪卡
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=FlashcardView}
// @Router /flashcards/restart [post]
func (c *FlashcardController) Restart(ctx *gin.Context) {
	d, err := c.FlashcardService.Restart(ctx.Request.Context(), currentUserID(ctx))
	c.reply(ctx, d, err)
}

// @Summary 导出 Anki CSV
// @Description 分号分隔，表头 Pergunta;Resposta
// @Tags 闪卡
// @Produce text/csv
// @Security ApiKeyAuth
// @Param store query bool false "保存到存储并返回地址"
// @Success 200 {file} file
// @Router /flashcards/export [get]
func (c *FlashcardController) Export(ctx *gin.Context) {
	data, err := c.FlashcardService.ExportCSV(ctx.Request.Context(), currentUserID(ctx))
	if err != nil {
		respondError(ctx, err, featureMessages{empty: "Nenhum flashcard para exportar."})
		return
	}
	sendExport(ctx, c.StorageService, service.FlashcardExportFile, util.MimeCSV, data)
}
