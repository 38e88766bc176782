package service

import (
	"strings"

	"study_boost_backend/internal/config"
	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const (
	demoUserName  = "Estudante"
	demoUserEmail = "estudante@demo.com"
)

// AuthService 演示登录：不校验凭据，直接签发终身会员的令牌
type AuthService struct {
	Cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{Cfg: cfg}
}

func (s *AuthService) Login(email string) (string, *model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		email = demoUserEmail
	}
	user := &model.User{
		ID:         email,
		Name:       demoUserName,
		IsLifetime: true,
	}
	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) GetCurrentUser(c *gin.Context) *model.User {
	claims := util.GetUserFromContext(c)
	if claims == nil {
		return nil
	}
	return &model.User{
		ID:         claims.UserID,
		Name:       claims.Name,
		IsLifetime: claims.IsLifetime,
	}
}
