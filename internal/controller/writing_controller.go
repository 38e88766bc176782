package controller

import (
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

var writingMessages = featureMessages{
	invalid: "Por favor, insira o texto da redação.",
	empty:   "A IA não conseguiu analisar sua redação. Tente novamente.",
	failure: "Ocorreu um erro ao processar a análise. Tente novamente mais tarde.",
}

type WritingController struct {
	WritingService *service.WritingService
}

func NewWritingController(writingService *service.WritingService) *WritingController {
	return &WritingController{WritingService: writingService}
}

type WritingRequest struct {
	Text string `json:"text"`
	Type string `json:"type"`
}

// @Summary 作文批改
// @Description 类型：ENEM、Dissertação Argumentativa、Artigo de Opinião（终身会员）
// @Tags 写作教练
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body WritingRequest true "作文内容与类型"
// @Success 200 {object} util.Response{data=model.WritingAnalysis}
// @Failure 403 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /writing/analyze [post]
func (c *WritingController) Analyze(ctx *gin.Context) {
	var req WritingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, writingMessages.invalid)
		return
	}
	analysis, err := c.WritingService.Analyze(ctx.Request.Context(), currentUserID(ctx), req.Text, req.Type)
	if err != nil {
		respondError(ctx, err, writingMessages)
		return
	}
	util.Success(ctx, analysis)
}
