package controller

import (
	"strconv"
	"time"

	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

var calendarMessages = featureMessages{
	invalid: "Data inválida.",
	empty:   "Nenhuma data encontrada para sua busca.",
	failure: "Ocorreu um erro ao buscar as datas. Tente novamente.",
}

var motivationMessages = featureMessages{
	invalid: "Data inválida.",
	empty:   "Não foi possível gerar as mensagens do mês. Tente novamente.",
	failure: "Erro ao comunicar com a IA. Tente novamente.",
}

type CalendarController struct {
	CalendarService *service.CalendarService
}

func NewCalendarController(calendarService *service.CalendarService) *CalendarController {
	return &CalendarController{CalendarService: calendarService}
}

type ToggleDayRequest struct {
	Year  int `json:"year" binding:"required"`
	Month int `json:"month" binding:"required,min=1,max=12"`
	Day   int `json:"day" binding:"required,min=1,max=31"`
}

type ExamSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// yearMonth 读取 ?year=&month=（月份 1-12），缺省为当前月
func yearMonth(ctx *gin.Context) (int, time.Month, bool) {
	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if v := ctx.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		year = y
	}
	if v := ctx.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			return 0, 0, false
		}
		month = m
	}
	return year, time.Month(month), true
}

// @Summary 获取某月日历
// @Description 学习打卡、考试事件与当月激励短句
// @Tags 激励日历
// @Produce json
// @Security ApiKeyAuth
// @Param year query int false "年份"
// @Param month query int false "月份 1-12"
// @Success 200 {object} util.Response{data=service.MonthView}
// @Router /calendar [get]
func (c *CalendarController) GetMonth(ctx *gin.Context) {
	year, month, ok := yearMonth(ctx)
	if !ok {
		util.BadRequest(ctx, calendarMessages.invalid)
		return
	}
	view, err := c.CalendarService.Month(ctx.Request.Context(), currentUserID(ctx), year, month)
	if err != nil {
		respondError(ctx, err, calendarMessages)
		return
	}
	util.Success(ctx, view)
}

// @Summary 切换学习打卡
// @Tags 激励日历
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ToggleDayRequest true "日期"
// @Success 200 {object} util.Response{data=service.MonthView}
// @Router /calendar/toggle [post]
func (c *CalendarController) ToggleDay(ctx *gin.Context) {
	var req ToggleDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, calendarMessages.invalid)
		return
	}
	view, err := c.CalendarService.ToggleStudyDay(ctx.Request.Context(), currentUserID(ctx), req.Year, time.Month(req.Month), req.Day)
	if err != nil {
		respondError(ctx, err, calendarMessages)
		return
	}
	util.Success(ctx, view)
}

// @Summary 搜索考试日期
// @Description 联网搜索考试日期并加入日历
// @Tags 激励日历
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body ExamSearchRequest true "搜索内容，例如 ENEM 2024"
// @Success 200 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /calendar/exams [post]
func (c *CalendarController) SearchExams(ctx *gin.Context) {
	var req ExamSearchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Por favor, digite o que deseja buscar.")
		return
	}
	exams, added, err := c.CalendarService.SearchExamDates(ctx.Request.Context(), currentUserID(ctx), req.Query)
	if err != nil {
		respondError(ctx, err, calendarMessages)
		return
	}
	util.Success(ctx, gin.H{
		"events": exams,
		"added":  added,
	})
}

// @Summary 生成每日寄语
// @Description 为当月每天生成一条激励寄语，不保存
// @Tags 激励日历
// @Produce json
// @Security ApiKeyAuth
// @Param year query int false "年份"
// @Param month query int false "月份 1-12"
// @Success 200 {object} util.Response
// @Router /calendar/motivation [get]
func (c *CalendarController) GenerateMotivation(ctx *gin.Context) {
	year, month, ok := yearMonth(ctx)
	if !ok {
		util.BadRequest(ctx, motivationMessages.invalid)
		return
	}
	messages, err := c.CalendarService.GenerateMotivation(ctx.Request.Context(), currentUserID(ctx), year, month)
	if err != nil {
		respondError(ctx, err, motivationMessages)
		return
	}
	util.Success(ctx, messages)
}
