package controller

import (
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/session"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

var quizMessages = featureMessages{
	invalid: "Preencha a disciplina, o tópico e escolha entre 5 e 20 questões.",
	empty:   "Não foi possível gerar as questões. Tente um tópico diferente.",
	failure: "Erro ao comunicar com a IA. Tente novamente.",
}

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

type SessionStartRequest struct {
	Discipline string `json:"discipline"`
	Topic      string `json:"topic"`
	Count      int    `json:"count"`
}

type QuizSelectRequest struct {
	Option *int `json:"option" binding:"required"`
}

// QuizView 模拟考状态及当前得分率
type QuizView struct {
	*session.Quiz
	Percentage int `json:"percentage"`
}

func quizView(q *session.Quiz) QuizView {
	return QuizView{Quiz: q, Percentage: q.Percentage()}
}

func (c *QuizController) reply(ctx *gin.Context, q *session.Quiz, err error) {
	if err != nil {
		respondError(ctx, err, quizMessages)
		return
	}
	util.Success(ctx, quizView(q))
}

// @Summary 当前模拟考状态
// @Tags 模拟考
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=QuizView}
// @Router /quiz [get]
func (c *QuizController) GetSession(ctx *gin.Context) {
	util.Success(ctx, quizView(c.QuizService.Get(ctx.Request.Context(), currentUserID(ctx))))
}

// @Summary 开始模拟考
// @Description 生成题目并进入答题状态，题量 5-20，默认 10
// @Tags 模拟考
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body SessionStartRequest true "学科、主题、题量"
// @Success 200 {object} util.Response{data=QuizView}
// @Failure 409 {object} util.Response
// @Failure 422 {object} util.Response
// @Failure 502 {object} util.Response
// @Router /quiz/start [post]
func (c *QuizController) Start(ctx *gin.Context) {
	var req SessionStartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, quizMessages.invalid)
		return
	}
	q, err := c.QuizService.Start(ctx.Request.Context(), currentUserID(ctx), req.Discipline, req.Topic, req.Count)
	c.reply(ctx, q, err)
}

// @Summary 选择选项
// @Tags 模拟考
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body QuizSelectRequest true "选项下标 0-3"
// @Success 200 {object} util.Response{data=QuizView}
// @Router /quiz/select [post]
func (c *QuizController) Select(ctx *gin.Context) {
	var req QuizSelectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, msgInvalidInput)
		return
	}
	q, err := c.QuizService.Select(ctx.Request.Context(), currentUserID(ctx), *req.Option)
	c.reply(ctx, q, err)
}

// @Summary 确认答案
// @Tags 模拟考
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=QuizView}
// @Router /quiz/confirm [post]
func (c *QuizController) Confirm(ctx *gin.Context) {
	q, err := c.QuizService.Confirm(ctx.Request.Context(), currentUserID(ctx))
	c.reply(ctx, q, err)
}

// @Summary 下一题
// @Description 最后一题之后进入结果页并记录成绩
// @Tags 模拟考
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=QuizView}
// @Router /quiz/next [post]
func (c *QuizController) Next(ctx *gin.Context) {
	q, err := c.QuizService.Next(ctx.Request.Context(), currentUserID(ctx))
	c.reply(ctx, q, err)
}

// @Summary 重新开始
// @Tags 模拟考
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=QuizView}
// @Router /quiz/restart [post]
func (c *QuizController) Restart(ctx *gin.Context) {
	q, err := c.QuizService.Restart(ctx.Request.Context(), currentUserID(ctx))
	c.reply(ctx, q, err)
}
