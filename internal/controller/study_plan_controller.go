package controller

import (
	"net/http"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

var planMessages = featureMessages{
	invalid: "Por favor, informe seu objetivo.",
	empty:   "A IA não conseguiu gerar um plano com os dados fornecidos. Tente ser mais específico.",
	failure: "Ocorreu um erro ao gerar o plano. Por favor, tente novamente.",
}

type StudyPlanController struct {
	PlanService    *service.StudyPlanService
	StorageService *service.StorageService
}

func NewStudyPlanController(planService *service.StudyPlanService, storageService *service.StorageService) *StudyPlanController {
	return &StudyPlanController{PlanService: planService, StorageService: storageService}
}

// @Summary 获取学习计划
// @Description 返回已保存的周计划与生成时使用的设置
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /plan [get]
func (c *StudyPlanController) GetPlan(ctx *gin.Context) {
	plan, settings := c.PlanService.Get(ctx.Request.Context(), currentUserID(ctx))
	if plan == nil {
		plan = model.StudyPlan{}
	}
	util.Success(ctx, gin.H{
		"plan":     plan,
		"settings": settings,
	})
}

// @Summary 生成学习计划
// @Description 根据目标、可用时间与强弱项生成周计划，覆盖旧计划
// @Tags 学习计划
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body model.StudyPlanSettings true "计划设置"
// @Success 200 {object} util.Response{data=model.StudyPlan}
// @Failure 409 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /plan [post]
func (c *StudyPlanController) GeneratePlan(ctx *gin.Context) {
	var req model.StudyPlanSettings
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, planMessages.invalid)
		return
	}

	plan, err := c.PlanService.Generate(ctx.Request.Context(), currentUserID(ctx), req)
	if err != nil {
		respondError(ctx, err, planMessages)
		return
	}
	util.Success(ctx, plan)
}

// @Summary 今日重点
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /plan/today [get]
func (c *StudyPlanController) GetTodayFocus(ctx *gin.Context) {
	focus := c.PlanService.TodayFocus(ctx.Request.Context(), currentUserID(ctx), time.Now())
	util.Success(ctx, gin.H{"focus": focus})
}

// @Summary 复制计划文本
// @Tags 学习计划
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /plan/copy [get]
func (c *StudyPlanController) CopyPlan(ctx *gin.Context) {
	plan, _ := c.PlanService.Get(ctx.Request.Context(), currentUserID(ctx))
	util.Success(ctx, gin.H{"text": service.CopyText(plan)})
}

// @Summary 导出计划
// @Description 下载 plano_de_estudos.txt
// @Tags 学习计划
// @Produce plain
// @Security ApiKeyAuth
// @Param store query bool false "保存到存储并返回地址"
// @Success 200 {file} file
// @Router /plan/export [get]
func (c *StudyPlanController) ExportPlan(ctx *gin.Context) {
	plan, _ := c.PlanService.Get(ctx.Request.Context(), currentUserID(ctx))
	if len(plan) == 0 {
		util.Error(ctx, http.StatusNotFound, "Nenhum plano de estudos salvo.")
		return
	}
	sendExport(ctx, c.StorageService, service.StudyPlanExportFile, util.MimeText, []byte(service.ExportText(plan)))
}
