package util

const (
	DateFormat   = "2006-01-02"
	TimeFormat   = "2006-01-02 15:04:05"
	BRDateFormat = "02/01/2006"
)

const (
	StorageLocal = "local"
	StorageMinio = "minio"
)

const (
	MimeText = "text/plain; charset=utf-8"
	MimeCSV  = "text/csv; charset=utf-8"
	MimePDF  = "application/pdf"
)

// 前端各功能视图的标识，同时用作飞行中请求守卫与 AI 指标的标签
const (
	FeatureTip        = "tip"
	FeaturePlan       = "plan"
	FeatureTutor      = "tutor"
	FeatureQuiz       = "quiz"
	FeatureFlashcards = "flashcards"
	FeatureCalendar   = "calendar"
	FeatureWriting    = "writing"
	FeatureMindMap    = "mindmap"
)
