package service

import "github.com/habitgrid/internal/tracker"

// MemoryRepository 直接使用 tracker 的内存结构，是默认后端
type MemoryRepository struct {
	habits      *tracker.HabitStore
	completions *tracker.CompletionIndex
}

// NewMemoryRepository 构造空的内存仓库
func NewMemoryRepository() *MemoryRepository {
	return newMemoryRepository(tracker.NewHabitStore())
}

func newMemoryRepository(habits *tracker.HabitStore) *MemoryRepository {
	return &MemoryRepository{
		habits:      habits,
		completions: tracker.NewCompletionIndex(),
	}
}

func (r *MemoryRepository) ListHabits() ([]tracker.Habit, error) {
	return r.habits.List(), nil
}

func (r *MemoryRepository) GetHabit(id string) (tracker.Habit, bool, error) {
	habit, ok := r.habits.Get(id)
	return habit, ok, nil
}

func (r *MemoryRepository) AddHabit(name, icon string) (tracker.Habit, bool, error) {
	habit, ok := r.habits.Add(name, icon)
	return habit, ok, nil
}

func (r *MemoryRepository) DeleteHabit(id string) (bool, int, error) {
	removed := r.habits.Delete(id)
	return removed, r.completions.CascadeDelete(id), nil
}

func (r *MemoryRepository) ToggleCompletion(habitID, date string) (bool, error) {
	return r.completions.Toggle(habitID, date), nil
}

func (r *MemoryRepository) IsCompleted(habitID, date string) (bool, error) {
	return r.completions.IsCompleted(habitID, date), nil
}

func (r *MemoryRepository) Completions() (map[string][]string, error) {
	return r.completions.Snapshot(), nil
}
