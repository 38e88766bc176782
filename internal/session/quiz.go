package session

import (
	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"
)

const (
	QuizMinCount = 5
	QuizMaxCount = 20
)

// Quiz 模拟考：setup -> quiz -> results
type Quiz struct {
	State      State                `json:"state"`
	Discipline string               `json:"discipline"`
	Topic      string               `json:"topic"`
	Count      int                  `json:"count"`
	Questions  []model.QuizQuestion `json:"questions"`
	Current    int                  `json:"current"`
	Selected   *int                 `json:"selected"`
	Confirmed  bool                 `json:"confirmed"`
	Score      int                  `json:"score"`
	Answers    []int                `json:"answers"`
}

func NewQuiz() *Quiz {
	q := &Quiz{}
	q.Restart()
	return q
}

// Configure 填写学科、主题与题量，count 为 0 时取默认值
func (q *Quiz) Configure(discipline, topic string, count int) error {
	if q.State != StateSetup {
		return util.ErrInvalidTransition
	}
	if count == 0 {
		count = DefaultCount
	}
	if discipline == "" || topic == "" || count < QuizMinCount || count > QuizMaxCount {
		return util.ErrInvalidInput
	}
	q.Discipline = discipline
	q.Topic = topic
	q.Count = count
	return nil
}

// Start 空结果时保持在 setup
func (q *Quiz) Start(questions []model.QuizQuestion) error {
	if q.State != StateSetup {
		return util.ErrInvalidTransition
	}
	if len(questions) == 0 {
		return util.ErrEmptyResult
	}
	q.Questions = questions
	q.Current = 0
	q.Selected = nil
	q.Confirmed = false
	q.Score = 0
	q.Answers = []int{}
	q.State = StateQuiz
	return nil
}

// Valid 读回的会话是否可以继续使用；setup 以外的状态必须指向一道存在的题目
func (q *Quiz) Valid() bool {
	switch q.State {
	case StateSetup:
		return true
	case StateQuiz, StateResults:
		return q.currentQuestion() != nil && q.Score >= 0 && q.Score <= len(q.Questions)
	default:
		return false
	}
}

func (q *Quiz) currentQuestion() *model.QuizQuestion {
	if q.Current < 0 || q.Current >= len(q.Questions) {
		return nil
	}
	return &q.Questions[q.Current]
}

// Select 确认后的选择会被忽略
func (q *Quiz) Select(option int) error {
	question := q.currentQuestion()
	if q.State != StateQuiz || question == nil {
		return util.ErrInvalidTransition
	}
	if q.Confirmed {
		return nil
	}
	if option < 0 || option >= len(question.Options) {
		return util.ErrInvalidInput
	}
	q.Selected = &option
	return nil
}

func (q *Quiz) Confirm() error {
	question := q.currentQuestion()
	if q.State != StateQuiz || question == nil || q.Selected == nil || q.Confirmed {
		return util.ErrInvalidTransition
	}
	q.Confirmed = true
	if *q.Selected == question.CorrectAnswer {
		q.Score++
	}
	q.Answers = append(q.Answers, *q.Selected)
	return nil
}

// Next 进入下一题；最后一题之后进入 results 并返回 true
func (q *Quiz) Next() (bool, error) {
	if q.State != StateQuiz || !q.Confirmed {
		return false, util.ErrInvalidTransition
	}
	q.Selected = nil
	q.Confirmed = false
	if q.Current+1 < len(q.Questions) {
		q.Current++
		return false, nil
	}
	q.State = StateResults
	return true, nil
}

func (q *Quiz) Percentage() int {
	return Percentage(q.Score, len(q.Questions))
}

// HistoryEntry 完成一次模拟考后追加到 quizHistory 的记录
func (q *Quiz) HistoryEntry(timestamp int64) model.QuizHistoryEntry {
	return model.QuizHistoryEntry{
		Discipline:     q.Discipline,
		Topic:          q.Topic,
		Score:          q.Score,
		TotalQuestions: len(q.Questions),
		Timestamp:      timestamp,
	}
}

func (q *Quiz) Restart() {
	*q = Quiz{
		State:     StateSetup,
		Count:     DefaultCount,
		Questions: []model.QuizQuestion{},
		Answers:   []int{},
	}
}
