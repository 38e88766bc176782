package controller

import (
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary 演示登录
// @Description 不校验凭据，签发终身会员令牌
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body LoginRequest false "登录信息"
// @Success 200 {object} util.Response
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	// 请求体可以为空
	_ = ctx.ShouldBindJSON(&req)

	token, user, err := c.AuthService.Login(req.Email)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// @Summary 退出登录
// @Description 令牌无状态，客户端丢弃即可
// @Tags 认证
// @Produce json
// @Success 200 {object} util.Response
// @Router /logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	util.Success(ctx, nil)
}

// @Summary 当前用户
// @Tags 认证
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
