package controller

import (
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HomeController struct {
	TipService *service.TipService
}

func NewHomeController(tipService *service.TipService) *HomeController {
	return &HomeController{TipService: tipService}
}

// @Summary 每日学习提示
// @Description AI 生成的学习提示，失败时返回激励短句
// @Tags 首页
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.DailyTip}
// @Router /home/tip [get]
func (c *HomeController) GetDailyTip(ctx *gin.Context) {
	util.Success(ctx, c.TipService.DailyTip(ctx.Request.Context()))
}
