package model

// QuizQuestion AI 生成的单选题，respostaCorreta 为 0-3 的选项下标
type QuizQuestion struct {
	Question      string   `json:"pergunta"`
	Options       []string `json:"opcoes"`
	CorrectAnswer int      `json:"respostaCorreta"`
}

// QuizHistoryEntry 每完成一次模拟考追加一条，从不修改或删除
type QuizHistoryEntry struct {
	Discipline     string `json:"discipline"`
	Topic          string `json:"topic"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Timestamp      int64  `json:"timestamp"`
}
