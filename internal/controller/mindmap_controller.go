package controller

import (
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

var mindMapMessages = featureMessages{
	invalid: "Por favor, insira um tópico.",
	empty:   "A IA não conseguiu gerar o mapa mental. Tente novamente.",
	failure: "Ocorreu um erro ao gerar o mapa mental. Tente novamente mais tarde.",
}

type MindMapController struct {
	MindMapService *service.MindMapService
}

func NewMindMapController(mindMapService *service.MindMapService) *MindMapController {
	return &MindMapController{MindMapService: mindMapService}
}

type MindMapRequest struct {
	Topic string `json:"topic"`
}

// @Summary 生成思维导图
// @Description 2-3 层的树状结构（终身会员）
// @Tags 思维导图
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body MindMapRequest true "中心主题"
// @Success 200 {object} util.Response{data=model.MindMapNode}
// @Failure 403 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /mindmap [post]
func (c *MindMapController) Generate(ctx *gin.Context) {
	var req MindMapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, mindMapMessages.invalid)
		return
	}
	root, err := c.MindMapService.Generate(ctx.Request.Context(), currentUserID(ctx), req.Topic)
	if err != nil {
		respondError(ctx, err, mindMapMessages)
		return
	}
	util.Success(ctx, gin.H{
		"root":  root,
		"depth": root.Depth(),
		"nodes": root.Count(),
	})
}
