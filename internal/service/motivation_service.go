package service

import (
	"math/rand"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/repository"
	"study_boost_backend/pkg/database"
	"study_boost_backend/pkg/logger"

	"go.uber.org/zap"
)

type MotivationService struct {
	MotivationRepo *repository.MotivationRepository
}

func NewMotivationService(motivationRepo *repository.MotivationRepository) *MotivationService {
	return &MotivationService{MotivationRepo: motivationRepo}
}

// RandomQuote 从启用的短句中随机取一条，数据库不可用时退回内置列表
func (s *MotivationService) RandomQuote() string {
	enabled, err := s.MotivationRepo.GetEnabled()
	if err != nil || len(enabled) == 0 {
		if err != nil {
			logger.Log.Warn("Failed to load motivations", zap.Error(err))
		}
		return database.DefaultMotivations[rand.Intn(len(database.DefaultMotivations))]
	}
	return enabled[rand.Intn(len(enabled))].Content
}

// GetCurrentMotivation 获取当前显示的激励短句，每 12 小时轮换一次
func (s *MotivationService) GetCurrentMotivation() (string, error) {
	current, err := s.MotivationRepo.GetCurrent()
	if err != nil {
		// 没有当前使用的，取第一条启用的
		enabledMotivations, err := s.MotivationRepo.GetEnabled()
		if err != nil || len(enabledMotivations) == 0 {
			return "", err
		}
		s.MotivationRepo.SetCurrent(enabledMotivations[0].ID)
		return enabledMotivations[0].Content, nil
	}

	elapsed := time.Since(current.LastUsedAt)
	enabledMotivations, err := s.MotivationRepo.GetEnabled()

	// 只有一条启用的短句时不切换
	if err == nil && len(enabledMotivations) > 1 && elapsed.Hours() >= 12 {
		var candidates []*model.Motivation
		for _, m := range enabledMotivations {
			if m.ID != current.ID {
				candidates = append(candidates, m)
			}
		}
		if len(candidates) > 0 {
			newCurrent := candidates[rand.Intn(len(candidates))]
			s.MotivationRepo.SetCurrent(newCurrent.ID)
			return newCurrent.Content, nil
		}
	}

	return current.Content, nil
}
