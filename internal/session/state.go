// Package session 模拟考与闪卡的练习状态机，以及日历月份数据的纯逻辑。
// 状态机本身不做 IO，由 service 层负责持久化。
package session

import "math"

type State string

const (
	StateSetup   State = "setup"
	StateQuiz    State = "quiz"
	StateReview  State = "review"
	StateResults State = "results"
)

const DefaultCount = 10

// Percentage round(100*part/total)，total 为 0 时返回 0
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(part) / float64(total)))
}
