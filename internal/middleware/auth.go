package middleware

import (
	"strings"

	"study_boost_backend/internal/config"
	"study_boost_backend/internal/util"
	"study_boost_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const proRequiredMessage = "Este recurso é exclusivo para membros vitalícios."

func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		// EventSource 无法设置请求头，SSE 通过 query 传令牌
		if tokenString == "" {
			tokenString = c.Query("token")
		}

		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			logger.Log.Debug("JWT解析错误", zap.Error(err))
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// ProMiddleware 写作批改与思维导图仅对终身会员开放
func ProMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := util.GetUserFromContext(c)
		if user == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		if !user.IsLifetime {
			util.Forbidden(c, proRequiredMessage)
			c.Abort()
			return
		}
		c.Next()
	}
}
