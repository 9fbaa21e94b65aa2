package tracker

import "time"

const daysPerWeek = 7

// Cell 是日历网格中的一个格子，Day 为 0 表示前导或补位空格
type Cell struct {
	Week    int    `json:"week"`
	Weekday int    `json:"weekday"`
	Day     int    `json:"day"`
	Date    string `json:"date,omitempty"`
}

// Blank 报告该格子是否为空格
func (c Cell) Blank() bool {
	return c.Day == 0
}

// Grid 是某年某月的日历网格
type Grid struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Cells []Cell     `json:"cells"`
}

// FirstWeekday 返回该月 1 日是星期几（0=周日 ... 6=周六）
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.Local).Weekday())
}

// DaysInMonth 取下个月的第 0 天，闰年二月自动正确
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}

// GenerateGrid 生成网格：先放 FirstWeekday 个空格，再依次放 1..DaysInMonth。
// 末行不补齐，需要规整行时使用 PaddedWeeks。
func GenerateGrid(year int, month time.Month) Grid {
	leading := FirstWeekday(year, month)
	days := DaysInMonth(year, month)

	cells := make([]Cell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, positioned(Cell{}, len(cells)))
	}
	for day := 1; day <= days; day++ {
		cells = append(cells, positioned(Cell{Day: day, Date: FormatDateKey(year, month, day)}, len(cells)))
	}

	return Grid{Year: year, Month: month, Cells: cells}
}

func positioned(c Cell, pos int) Cell {
	c.Week = pos / daysPerWeek
	c.Weekday = pos % daysPerWeek
	return c
}

// Weeks 按 7 个一组切分，最后一周可能不足 7 格
func (g Grid) Weeks() [][]Cell {
	weeks := make([][]Cell, 0, (len(g.Cells)+daysPerWeek-1)/daysPerWeek)
	for i := 0; i < len(g.Cells); i += daysPerWeek {
		end := min(i+daysPerWeek, len(g.Cells))
		weeks = append(weeks, g.Cells[i:end:end])
	}
	return weeks
}

// PaddedWeeks 与 Weeks 相同，但最后一周用空格补齐到 7 格
func (g Grid) PaddedWeeks() [][]Cell {
	weeks := g.Weeks()
	if len(weeks) == 0 {
		return weeks
	}
	last := weeks[len(weeks)-1]
	week := len(weeks) - 1
	for len(last) < daysPerWeek {
		last = append(last, Cell{Week: week, Weekday: len(last)})
	}
	weeks[len(weeks)-1] = last
	return weeks
}

// LeadingBlanks counts blank cells before day 1.
func (g Grid) LeadingBlanks() int {
	n := 0
	for _, c := range g.Cells {
		if !c.Blank() {
			break
		}
		n++
	}
	return n
}

// DayCount 返回非空格子数
func (g Grid) DayCount() int {
	n := 0
	for _, c := range g.Cells {
		if !c.Blank() {
			n++
		}
	}
	return n
}

// IsToday 仅当格子的年、月、日都与 now 的本地日期相同时为真
func (g Grid) IsToday(c Cell, now time.Time) bool {
	if c.Blank() {
		return false
	}
	local := now.Local()
	return c.Day == local.Day() && g.Month == local.Month() && g.Year == local.Year()
}
