package handler

import "github.com/habitgrid/internal/locale"

type uiString struct {
	english string
	chinese string
}

var uiStrings = map[string]uiString{
	"title":          {"Habit Tracker", "习惯打卡"},
	"myHabits":       {"My Habits", "我的习惯"},
	"addPlaceholder": {"Add a new habit...", "添加一个新习惯..."},
	"add":            {"Add", "添加"},
	"selectIcon":     {"Select icon", "选择图标"},
	"noIcon":         {"No icon", "不使用图标"},
	"noHabits":       {"No habits yet. Add one to get started!", "还没有习惯，先添加一个吧！"},
	"startTracking":  {"Add habits above to start tracking!", "在上方添加习惯后即可开始打卡！"},
	"delete":         {"Delete", "删除"},
	"selectMonth":    {"Select month", "选择月份"},
	"selectYear":     {"Select year", "选择年份"},
	"show":           {"Show", "查看"},
	"previousMonth":  {"Previous month", "上个月"},
	"nextMonth":      {"Next month", "下个月"},
	"markComplete":   {"Mark complete", "标记完成"},
	"markIncomplete": {"Mark incomplete", "取消完成"},
}

// uiText 返回当前语言下页面使用的全部文案
func uiText(language string) map[string]string {
	texts := make(map[string]string, len(uiStrings))
	for key, value := range uiStrings {
		texts[key] = locale.Pick(language, value.english, value.chinese)
	}
	return texts
}
