package locale

import "time"

var (
	monthNamesEnglish = [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	monthNamesChinese = [12]string{
		"一月", "二月", "三月", "四月", "五月", "六月",
		"七月", "八月", "九月", "十月", "十一月", "十二月",
	}
	weekdayNamesEnglish = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	weekdayNamesChinese = [7]string{"日", "一", "二", "三", "四", "五", "六"}
)

// Pick returns the text matching the request language, defaulting to English.
func Pick(language, english, chinese string) string {
	if NormalizeLanguage(language) == LanguageChinese {
		if chinese != "" {
			return chinese
		}
		return english
	}
	if english != "" {
		return english
	}
	return chinese
}

// MonthName 返回本地化月份名称，越界时返回空串
func MonthName(language string, month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return Pick(language, monthNamesEnglish[month-1], monthNamesChinese[month-1])
}

// WeekdayNames 从周日开始，与日历网格的列顺序一致
func WeekdayNames(language string) []string {
	names := make([]string, 0, len(weekdayNamesEnglish))
	for i := range weekdayNamesEnglish {
		names = append(names, Pick(language, weekdayNamesEnglish[i], weekdayNamesChinese[i]))
	}
	return names
}
