package session

import (
	"fmt"
	"strings"
	"time"

	"study_boost_backend/internal/model"
	"study_boost_backend/internal/util"
)

// QuoteFunc 新建月份时提供激励短句
type QuoteFunc func() string

// MonthKey "{year}-{月份下标}"，月份下标从 0 开始
func MonthKey(year int, month time.Month) string {
	return fmt.Sprintf("%d-%d", year, int(month)-1)
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StoredMonth 同时兼容新旧两种存储结构；旧结构只有 messages 与 studiedDays
type StoredMonth struct {
	StudiedDays map[int]bool                  `json:"studiedDays"`
	Events      map[int][]model.CalendarEvent `json:"events,omitempty"`
	Quote       string                        `json:"quote,omitempty"`
	Messages    map[int]string                `json:"messages,omitempty"`
}

func (m *StoredMonth) legacy() bool {
	return m.Messages != nil && m.Quote == "" && m.Events == nil
}

// Normalize 把存储数据统一成 {studiedDays, events, quote}，旧结构的第 1 天寄语作为月度短句
func Normalize(stored map[string]*StoredMonth, quote QuoteFunc) (model.CalendarData, bool) {
	data := make(model.CalendarData, len(stored))
	migrated := false
	for key, m := range stored {
		if m == nil {
			continue
		}
		month := model.NewCalendarMonth(m.Quote)
		for day, studied := range m.StudiedDays {
			month.StudiedDays[day] = studied
		}
		for day, events := range m.Events {
			month.Events[day] = events
		}
		if m.legacy() {
			migrated = true
			month.Quote = m.Messages[1]
		}
		if month.Quote == "" {
			month.Quote = quote()
		}
		data[key] = month
	}
	return data, migrated
}

// Month 已存在的月份或一个带随机短句的新月份（不写入 data）
func Month(data model.CalendarData, year int, month time.Month, quote QuoteFunc) *model.CalendarMonth {
	if m, ok := data[MonthKey(year, month)]; ok && m != nil {
		return m
	}
	return model.NewCalendarMonth(quote())
}

// ToggleStudyDay 翻转某天的学习标记，返回新值
func ToggleStudyDay(data model.CalendarData, year int, month time.Month, day int, quote QuoteFunc) (bool, error) {
	if day < 1 || day > DaysIn(year, month) {
		return false, util.ErrInvalidInput
	}
	key := MonthKey(year, month)
	m := Month(data, year, month, quote)
	m.StudiedDays[day] = !m.StudiedDays[day]
	data[key] = m
	return m.StudiedDays[day], nil
}

// MergeExamDates 按日期归入对应月份，同一天同名事件只保留一次，非法日期跳过；返回新增数量
func MergeExamDates(data model.CalendarData, exams []model.ExamDate, quote QuoteFunc) int {
	added := 0
	for _, exam := range exams {
		title := strings.TrimSpace(exam.Name)
		date, err := time.Parse(util.DateFormat, strings.TrimSpace(exam.Date))
		if err != nil || title == "" {
			continue
		}

		key := MonthKey(date.Year(), date.Month())
		m := Month(data, date.Year(), date.Month(), quote)
		data[key] = m

		day := date.Day()
		duplicate := false
		for _, e := range m.Events[day] {
			if e.Title == title {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		m.Events[day] = append(m.Events[day], model.CalendarEvent{Title: title})
		added++
	}
	return added
}
