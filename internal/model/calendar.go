package model

type CalendarEvent struct {
	Title string `json:"title"`
}

// CalendarMonth 一个月的日历数据，按 "{year}-{monthIndex}" 存放
type CalendarMonth struct {
	StudiedDays map[int]bool            `json:"studiedDays"`
	Events      map[int][]CalendarEvent `json:"events"`
	Quote       string                  `json:"quote"`
}

type CalendarData map[string]*CalendarMonth

// ExamDate 考试日期检索结果，date 为 YYYY-MM-DD
type ExamDate struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

func NewCalendarMonth(quote string) *CalendarMonth {
	return &CalendarMonth{
		StudiedDays: map[int]bool{},
		Events:      map[int][]CalendarEvent{},
		Quote:       quote,
	}
}

// StudiedCount 统计标记为已学习的天数
func (m *CalendarMonth) StudiedCount() int {
	n := 0
	for _, studied := range m.StudiedDays {
		if studied {
			n++
		}
	}
	return n
}
