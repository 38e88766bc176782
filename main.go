// @title Study Boost 后端 API
// @version 1.0
// @description 学习助手后端：学习计划、AI 导师、模拟考、闪卡、激励日历、写作批改、思维导图与学习进度。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"study_boost_backend/internal/app"
	"study_boost_backend/internal/config"
	"study_boost_backend/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
