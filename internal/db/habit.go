package db

// Habit 定义了习惯表
// Position 保存插入顺序，列表按 position 升序即为展示顺序
type Habit struct {
	ID       string `gorm:"primaryKey;size:36"`
	Name     string `gorm:"not null"`
	Icon     string
	Position int64 `gorm:"index;not null"`
}

// HabitCompletion 记录某习惯在某日期键上的完成标记
// HabitID + DateKey 采用唯一索引；某日期没有任何行即表示该日期无完成记录
type HabitCompletion struct {
	ID      uint   `gorm:"primaryKey"`
	HabitID string `gorm:"size:36;not null;index;index:idx_habit_completion_unique,unique"`
	DateKey string `gorm:"size:10;not null;index;index:idx_habit_completion_unique,unique"`
}

// TableName 重写确保唯一索引作用到 habit_id + date_key
func (HabitCompletion) TableName() string {
	return "habit_completions"
}
