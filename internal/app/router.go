package app

import (
	"study_boost_backend/docs"
	"study_boost_backend/internal/config"
	"study_boost_backend/internal/middleware"
	"study_boost_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. 公共路由(无需登录)
	registerPublicRoutes(router, c)

	// 2. 需要登录的功能
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		registerStudyRoutes(authGroup, c)

		// 3. 终身会员功能
		pro := authGroup.Group("")
		pro.Use(middleware.ProMiddleware())
		{
			pro.POST("/writing/analyze", c.writing.Analyze)
			pro.POST("/mindmap", c.mindMap.Generate)
		}
	}
}

func registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
		public.POST("/logout", c.auth.Logout)
	}
}

func registerStudyRoutes(r *gin.RouterGroup, c *controllers) {
	r.GET("/profile", c.auth.GetProfile)
	r.GET("/home/tip", c.home.GetDailyTip)
	r.GET("/motivation", c.motivation.GetCurrentMotivation)
	r.GET("/motivation/random", c.motivation.GetRandomMotivation)

	// 学习计划
	plan := r.Group("/plan")
	{
		plan.GET("", c.plan.GetPlan)
		plan.POST("", c.plan.GeneratePlan)
		plan.GET("/today", c.plan.GetTodayFocus)
		plan.GET("/copy", c.plan.CopyPlan)
		plan.GET("/export", c.plan.ExportPlan)
	}

	// AI 导师
	tutor := r.Group("/tutor")
	{
		tutor.GET("/history", c.tutor.GetHistory)
		tutor.DELETE("/history", c.tutor.ResetHistory)
		tutor.POST("/message", c.tutor.SendMessage)
		tutor.GET("/ws", c.tutor.Socket)
	}

	// 模拟考
	quiz := r.Group("/quiz")
	{
		quiz.GET("", c.quiz.GetSession)
		quiz.POST("/start", c.quiz.Start)
		quiz.POST("/select", c.quiz.Select)
		quiz.POST("/confirm", c.quiz.Confirm)
		quiz.POST("/next", c.quiz.Next)
		quiz.POST("/restart", c.quiz.Restart)
	}

	// 闪卡
	flashcards := r.Group("/flashcards")
	{
		flashcards.GET("", c.flashcard.GetSession)
		flashcards.POST("/start", c.flashcard.Start)
		flashcards.POST("/flip", c.flashcard.Flip)
		flashcards.POST("/evaluate", c.flashcard.Evaluate)
		flashcards.POST("/restart", c.flashcard.Restart)
		flashcards.GET("/export", c.flashcard.Export)
	}

	// 激励日历
	calendar := r.Group("/calendar")
	{
		calendar.GET("", c.calendar.GetMonth)
		calendar.POST("/toggle", c.calendar.ToggleDay)
		calendar.POST("/exams", c.calendar.SearchExams)
		calendar.GET("/motivation", c.calendar.GenerateMotivation)
	}

	r.GET("/progress", c.progress.GetSummary)

	// 悬浮笔记
	notepad := r.Group("/notepad")
	{
		notepad.GET("", c.notepad.Get)
		notepad.PUT("", c.notepad.SaveContent)
		notepad.PUT("/position", c.notepad.SavePosition)
		notepad.GET("/export", c.notepad.Export)
	}
}
