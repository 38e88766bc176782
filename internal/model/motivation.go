package model

import (
	"time"

	"gorm.io/gorm"
)

// Motivation 激励短句，日历与每日提示的兜底文案
type Motivation struct {
	gorm.Model
	Content         string    `gorm:"type:text;not null" json:"content"`
	IsEnabled       bool      `gorm:"default:true" json:"is_enabled"`
	IsCurrentlyUsed bool      `gorm:"default:false" json:"is_currently_used"`
	LastUsedAt      time.Time `json:"last_used_at"`
}

func (Motivation) TableName() string {
	return "motivations"
}
