package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateKeyLayout 是日期键的 time 布局，仅用于解析校验
const DateKeyLayout = "2006-01-02"

// ErrInvalidDateKey 在日期键不是规范的 YYYY-MM-DD 形式时返回
var ErrInvalidDateKey = errors.New("invalid date key")

// FormatDateKey 生成 YYYY-MM-DD 日期键，月与日补零到两位，年份原样输出。
// CompletionIndex 使用字符串相等比较，因此格式必须稳定。
func FormatDateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%d-%02d-%02d", year, int(month), day)
}

// DateKeyOf returns the key for t's local calendar date.
func DateKeyOf(t time.Time) string {
	return FormatDateKey(t.Year(), t.Month(), t.Day())
}

// ParseDateKey 解析日期键，只接受能通过 FormatDateKey 原样还原的字符串，
// 例如 "2024-3-5" 或 "2024-02-30" 都会被拒绝。
func ParseDateKey(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDateKey)
	}

	parsed, err := time.ParseInLocation(DateKeyLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDateKey, raw)
	}

	if DateKeyOf(parsed) != raw {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDateKey, raw)
	}

	return parsed, nil
}
