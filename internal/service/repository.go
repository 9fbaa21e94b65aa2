package service

import (
	"fmt"

	"github.com/habitgrid/internal/config"
	"github.com/habitgrid/internal/db"
	"github.com/habitgrid/internal/tracker"
)

// Repository 抽象习惯与完成标记的存储，调用方（HabitService）负责串行化访问
type Repository interface {
	ListHabits() ([]tracker.Habit, error)
	GetHabit(id string) (tracker.Habit, bool, error)
	// AddHabit 规整名称后以唯一 ID 追加习惯；名称为空白时返回 false 且不做修改
	AddHabit(name, icon string) (tracker.Habit, bool, error)
	// DeleteHabit 原子地删除习惯及其全部完成标记，返回是否删除了习惯以及受影响的日期数。
	// 习惯不存在时仍会清理残留的完成标记。
	DeleteHabit(id string) (bool, int, error)

	ToggleCompletion(habitID, date string) (bool, error)
	IsCompleted(habitID, date string) (bool, error)
	// Completions 返回日期键到已排序习惯 ID 的快照，不含空集合
	Completions() (map[string][]string, error)
}

// OpenRepository 根据配置的后端构造仓库，返回的 close 函数用于释放资源
func OpenRepository(backend string) (Repository, func() error, error) {
	switch backend {
	case config.BackendMemory, "":
		return NewMemoryRepository(), func() error { return nil }, nil
	case config.BackendSQLite:
		gdb, err := db.OpenMemory("")
		if err != nil {
			return nil, nil, err
		}
		return NewSQLRepository(gdb), func() error { return db.Close(gdb) }, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store backend %q", backend)
	}
}
