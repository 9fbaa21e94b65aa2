package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/habitgrid/internal/tracker"
)

const (
	// MinYear/MaxYear 限定在四位年份，保证日期键可被 tracker.ParseDateKey 解析
	MinYear = 1000
	MaxYear = 9999

	yearOptionSpan = 10
)

// ErrInvalidSelection 在年份或月份越界时返回
var ErrInvalidSelection = errors.New("invalid month selection")

// Selection 是当前展示的年月，仅影响视图，不影响数据
type Selection struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// CurrentSelection 返回 now 所在的本地年月
func CurrentSelection(now time.Time) Selection {
	local := now.Local()
	return Selection{Year: local.Year(), Month: local.Month()}
}

// NewSelection 校验并构造 Selection
func NewSelection(year int, month time.Month) (Selection, error) {
	if year < MinYear || year > MaxYear {
		return Selection{}, fmt.Errorf("%w: year %d", ErrInvalidSelection, year)
	}
	if month < time.January || month > time.December {
		return Selection{}, fmt.Errorf("%w: month %d", ErrInvalidSelection, month)
	}
	return Selection{Year: year, Month: month}, nil
}

// SelectMonth keeps the year and switches the month.
func (s Selection) SelectMonth(month time.Month) (Selection, error) {
	return NewSelection(s.Year, month)
}

// SelectYear keeps the month and switches the year.
func (s Selection) SelectYear(year int) (Selection, error) {
	return NewSelection(year, s.Month)
}

// Shift 前后移动若干个月，跨年自动进位
func (s Selection) Shift(months int) (Selection, error) {
	first := time.Date(s.Year, s.Month, 1, 0, 0, 0, 0, time.Local).AddDate(0, months, 0)
	return NewSelection(first.Year(), first.Month())
}

// Grid 生成所选年月的日历网格
func (s Selection) Grid() tracker.Grid {
	return tracker.GenerateGrid(s.Year, s.Month)
}

// YearOptions 返回年份下拉框的候选值：当前年份前后各 10 年，
// 若所选年份不在区间内也会被包含进来
func YearOptions(now time.Time, selected int) []int {
	current := now.Local().Year()
	years := make([]int, 0, 2*yearOptionSpan+2)
	if selected < current-yearOptionSpan {
		years = append(years, selected)
	}
	for year := current - yearOptionSpan; year <= current+yearOptionSpan; year++ {
		years = append(years, year)
	}
	if selected > current+yearOptionSpan {
		years = append(years, selected)
	}
	return years
}
