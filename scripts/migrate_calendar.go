// 批量迁移旧版日历数据
//
// 服务在读取日历时会自动迁移旧结构（messages -> quote），
// 此脚本用于上线前一次性处理所有用户，避免首次访问时才写回。
//
// 用法: go run scripts/migrate_calendar.go [-config configs/config.yaml] [-dry-run]

package main

import (
	"context"
	"flag"
	"log"
	"os"

	"study_boost_backend/internal/config"
	"study_boost_backend/internal/model"
	"study_boost_backend/internal/repository"
	"study_boost_backend/internal/service"
	"study_boost_backend/internal/session"
	"study_boost_backend/pkg/database"
	"study_boost_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	path := flag.String("config", "configs/config.yaml", "配置文件路径")
	dryRun := flag.Bool("dry-run", false, "只统计，不写回")
	flag.Parse()

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == "debug")
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	ctx := context.Background()
	repo := repository.NewStoreRepository(db)
	store := service.NewStoreService(repo)
	quotes := service.NewMotivationService(repository.NewMotivationRepository(db))
	calendar := service.NewCalendarService(nil, store, service.NewMemoryGuard(), quotes)

	users, err := repo.UserIDs(ctx, model.KeyCalendar)
	if err != nil {
		log.Fatalf("查询用户失败: %v", err)
	}

	migrated := 0
	for _, userID := range users {
		stored, ok := service.LoadJSON[map[string]*session.StoredMonth](ctx, store, userID, model.KeyCalendar)
		if !ok {
			continue
		}
		if _, legacy := session.Normalize(stored, quotes.RandomQuote); !legacy {
			continue
		}
		migrated++
		if *dryRun {
			log.Printf("待迁移: %s", userID)
			continue
		}
		// Load 会完成迁移并写回
		calendar.Load(ctx, userID)
	}

	log.Printf("完成！共 %d 个用户，迁移 %d 个", len(users), migrated)
}
