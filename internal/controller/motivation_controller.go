package controller

import (
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MotivationController struct {
	MotivationService *service.MotivationService
}

func NewMotivationController(motivationService *service.MotivationService) *MotivationController {
	return &MotivationController{MotivationService: motivationService}
}

// @Summary 获取当前显示的激励短句
// @Description 每 12 小时轮换一次
// @Tags 激励短句
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /motivation [get]
func (c *MotivationController) GetCurrentMotivation(ctx *gin.Context) {
	motivation, err := c.MotivationService.GetCurrentMotivation()
	if err != nil || motivation == "" {
		motivation = c.MotivationService.RandomQuote()
	}

	util.Success(ctx, gin.H{"content": motivation})
}

// @Summary 随机激励短句
// @Tags 激励短句
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /motivation/random [get]
func (c *MotivationController) GetRandomMotivation(ctx *gin.Context) {
	util.Success(ctx, gin.H{"content": c.MotivationService.RandomQuote()})
}
