package controller

import (
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// @Summary 学习进度总览
// @Description 模拟考平均正确率、趋势、各学科表现与打卡天数
// @Tags 学习进度
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.ProgressSummary}
// @Router /progress [get]
func (c *ProgressController) GetSummary(ctx *gin.Context) {
	util.Success(ctx, c.ProgressService.Summary(ctx.Request.Context(), currentUserID(ctx)))
}
