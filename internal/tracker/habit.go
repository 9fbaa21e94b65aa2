package tracker

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Habit 定义了一个待追踪的习惯
// ID 创建后不可变；Icon 只用于展示
type Habit struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// HabitStore 按插入顺序保存习惯，插入顺序即展示顺序
type HabitStore struct {
	habits []Habit
	newID  func() string
}

// NewHabitStore 构造 HabitStore，ID 使用 UUID v4
func NewHabitStore() *HabitStore {
	return NewHabitStoreWithIDs(uuid.NewString)
}

// NewHabitStoreWithIDs 使用自定义 ID 生成器，生成的重复 ID 会被丢弃重试
func NewHabitStoreWithIDs(newID func() string) *HabitStore {
	return &HabitStore{newID: newID}
}

// NewHabit 规整名称与图标并构造习惯；名称去空白后为空时返回 false
func NewHabit(id, name, icon string) (Habit, bool) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Habit{}, false
	}
	return Habit{ID: id, Name: trimmed, Icon: strings.TrimSpace(icon)}, true
}

// Add 追加一个新习惯；名称去空白后为空时不做任何修改并返回 false
func (s *HabitStore) Add(name, icon string) (Habit, bool) {
	habit, ok := NewHabit("", name, icon)
	if !ok {
		return Habit{}, false
	}

	habit.ID = s.nextID()
	s.habits = append(s.habits, habit)
	return habit, true
}

// Delete 删除指定习惯，不存在时返回 false
func (s *HabitStore) Delete(id string) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	s.habits = slices.Delete(s.habits, idx, idx+1)
	return true
}

// Get 根据 ID 获取习惯
func (s *HabitStore) Get(id string) (Habit, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Habit{}, false
	}
	return s.habits[idx], true
}

// List 返回有序副本
func (s *HabitStore) List() []Habit {
	return slices.Clone(s.habits)
}

func (s *HabitStore) Len() int {
	return len(s.habits)
}

func (s *HabitStore) indexOf(id string) int {
	return slices.IndexFunc(s.habits, func(h Habit) bool { return h.ID == id })
}

// nextID 保证与当前持有的习惯不重复
func (s *HabitStore) nextID() string {
	gen := s.newID
	if gen == nil {
		gen = uuid.NewString
	}
	for {
		id := gen()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}
