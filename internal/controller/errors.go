package controller

import (
	"errors"
	"net/http"

	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// featureMessages 每个功能面向用户的提示语
type featureMessages struct {
	invalid string
	empty   string
	failure string
}

const (
	msgInvalidInput      = "Dados inválidos."
	msgInvalidTransition = "Ação não permitida no estado atual."
	msgInFlight          = "Uma solicitação já está em andamento. Aguarde."
	msgAIFailure         = "Erro ao comunicar com a IA. Tente novamente."
	msgProRequired       = "Este recurso é exclusivo para membros vitalícios."
)

// respondError 把服务层的哨兵错误映射为 HTTP 状态码与提示语
func respondError(ctx *gin.Context, err error, msgs featureMessages) {
	switch {
	case errors.Is(err, util.ErrInvalidInput):
		util.BadRequest(ctx, orDefault(msgs.invalid, msgInvalidInput))
	case errors.Is(err, util.ErrInvalidTransition):
		util.Conflict(ctx, msgInvalidTransition)
	case errors.Is(err, util.ErrRequestInFlight):
		util.Conflict(ctx, msgInFlight)
	case errors.Is(err, util.ErrEmptyResult):
		util.Error(ctx, http.StatusUnprocessableEntity, orDefault(msgs.empty, msgAIFailure))
	case errors.Is(err, util.ErrAIUnavailable):
		util.Error(ctx, http.StatusBadGateway, orDefault(msgs.failure, msgAIFailure))
	case errors.Is(err, util.ErrProRequired):
		util.Forbidden(ctx, msgProRequired)
	default:
		util.LogInternalError(ctx, err)
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// currentUserID AuthMiddleware 之后调用
func currentUserID(ctx *gin.Context) string {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		return ""
	}
	return claims.UserID
}
