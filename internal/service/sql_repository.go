package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/habitgrid/internal/db"
	"github.com/habitgrid/internal/tracker"
	"gorm.io/gorm"
)

// SQLRepository 将习惯与完成标记保存在 gorm 管理的 SQLite 内存库中
// 每个 (habit_id, date_key) 一行，某日期没有行即表示集合为空，因此不会出现空集合
type SQLRepository struct {
	db    *gorm.DB
	newID func() string
}

// NewSQLRepository 构造 SQLRepository，gdb 需已迁移 db.Habit 与 db.HabitCompletion
func NewSQLRepository(gdb *gorm.DB) *SQLRepository {
	return &SQLRepository{db: gdb, newID: uuid.NewString}
}

func (r *SQLRepository) ListHabits() ([]tracker.Habit, error) {
	var rows []db.Habit
	if err := r.db.Order("position ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}

	habits := make([]tracker.Habit, 0, len(rows))
	for _, row := range rows {
		habits = append(habits, habitFromRow(row))
	}
	return habits, nil
}

func (r *SQLRepository) GetHabit(id string) (tracker.Habit, bool, error) {
	var row db.Habit
	if err := r.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tracker.Habit{}, false, nil
		}
		return tracker.Habit{}, false, fmt.Errorf("get habit: %w", err)
	}
	return habitFromRow(row), true, nil
}

// AddHabit 在事务内分配未占用的 ID，并以当前最大 position + 1 追加，保持插入顺序
func (r *SQLRepository) AddHabit(name, icon string) (tracker.Habit, bool, error) {
	habit, ok := tracker.NewHabit("", name, icon)
	if !ok {
		return tracker.Habit{}, false, nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for {
			habit.ID = r.newID()
			var count int64
			if err := tx.Model(&db.Habit{}).Where("id = ?", habit.ID).Count(&count).Error; err != nil {
				return fmt.Errorf("check habit id: %w", err)
			}
			if count == 0 {
				break
			}
		}

		var last int64
		if err := tx.Model(&db.Habit{}).Select("COALESCE(MAX(position), 0)").Scan(&last).Error; err != nil {
			return fmt.Errorf("next habit position: %w", err)
		}

		row := db.Habit{ID: habit.ID, Name: habit.Name, Icon: habit.Icon, Position: last + 1}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("insert habit: %w", err)
		}
		return nil
	})
	if err != nil {
		return tracker.Habit{}, false, err
	}
	return habit, true, nil
}

// DeleteHabit 先清理完成标记再删除习惯，两步在同一事务中，任一失败都整体回滚
func (r *SQLRepository) DeleteHabit(id string) (bool, int, error) {
	var (
		removed bool
		touched int
	)
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// 每个日期对同一习惯最多一行，删除行数即受影响的日期数
		cascade := tx.Where("habit_id = ?", id).Delete(&db.HabitCompletion{})
		if cascade.Error != nil {
			return fmt.Errorf("cascade completions: %w", cascade.Error)
		}

		result := tx.Where("id = ?", id).Delete(&db.Habit{})
		if result.Error != nil {
			return fmt.Errorf("delete habit: %w", result.Error)
		}

		touched = int(cascade.RowsAffected)
		removed = result.RowsAffected > 0
		return nil
	})
	if err != nil {
		return false, 0, err
	}
	return removed, touched, nil
}

func (r *SQLRepository) ToggleCompletion(habitID, date string) (bool, error) {
	var completed bool
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("habit_id = ? AND date_key = ?", habitID, date).Delete(&db.HabitCompletion{})
		if result.Error != nil {
			return fmt.Errorf("remove completion: %w", result.Error)
		}
		if result.RowsAffected > 0 {
			completed = false
			return nil
		}

		if err := tx.Create(&db.HabitCompletion{HabitID: habitID, DateKey: date}).Error; err != nil {
			return fmt.Errorf("add completion: %w", err)
		}
		completed = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

func (r *SQLRepository) IsCompleted(habitID, date string) (bool, error) {
	var count int64
	if err := r.db.Model(&db.HabitCompletion{}).
		Where("habit_id = ? AND date_key = ?", habitID, date).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check completion: %w", err)
	}
	return count > 0, nil
}

func (r *SQLRepository) Completions() (map[string][]string, error) {
	var rows []db.HabitCompletion
	if err := r.db.Order("date_key ASC, habit_id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}

	out := make(map[string][]string)
	for _, row := range rows {
		out[row.DateKey] = append(out[row.DateKey], row.HabitID)
	}
	return out, nil
}

func habitFromRow(row db.Habit) tracker.Habit {
	return tracker.Habit{ID: row.ID, Name: row.Name, Icon: row.Icon}
}
