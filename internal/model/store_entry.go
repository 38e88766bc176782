package model

import "time"

// 用户键值存储中的键名，与前端 localStorage 保持一致
const (
	KeyStudyPlan         = "studyPlan"
	KeyStudyPlanSettings = "studyPlanSettings"
	KeyQuizHistory       = "quizHistory"
	KeyCalendar          = "motivationalCalendar"
	KeyNotepadContent    = "notepadContent"
	KeyNotepadPosition   = "notepadPosition"
	KeyFabPosition       = "fabPosition"
	KeyTutorHistory      = "tutorHistory"
	KeyQuizSession       = "quizSession"
	KeyFlashcardSession  = "flashcardSession"
)

// StoreEntry 一个用户下的一条 JSON 数据
type StoreEntry struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"size:128;not null;uniqueIndex:idx_store_user_key" json:"userId"`
	StoreKey  string    `gorm:"size:64;not null;uniqueIndex:idx_store_user_key" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (StoreEntry) TableName() string {
	return "store_entries"
}
