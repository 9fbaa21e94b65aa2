package service

import (
	"errors"
	"fmt"
	"html"
	"strings"
	"sync"

	appLog "github.com/habitgrid/internal/log"
	"github.com/habitgrid/internal/tracker"
	"github.com/microcosm-cc/bluemonday"
)

var (
	// ErrHabitNameRequired 在习惯名称为空白时返回，此时不会创建任何习惯
	ErrHabitNameRequired = errors.New("habit name is required")
	// ErrHabitNotFound 在指定习惯不存在时返回
	ErrHabitNotFound = errors.New("habit not found")
	// ErrInvalidDateKey 在日期键不是 YYYY-MM-DD 时返回
	ErrInvalidDateKey = tracker.ErrInvalidDateKey
)

// HabitService 是应用唯一的状态容器，持有习惯列表与完成索引
// HTTP 请求并发到达，但所有命令通过 mu 串行执行，每个命令完整结束后才处理下一个
type HabitService struct {
	mu        sync.Mutex
	repo      Repository
	sanitizer *bluemonday.Policy
}

// NewHabitService 构造 HabitService
func NewHabitService(repo Repository) *HabitService {
	return &HabitService{
		repo:      repo,
		sanitizer: bluemonday.StrictPolicy(),
	}
}

// AddHabit 新建习惯并追加到列表末尾
func (s *HabitService) AddHabit(name, icon string) (*tracker.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habit, ok, err := s.repo.AddHabit(name, s.cleanIcon(icon))
	if err != nil {
		return nil, fmt.Errorf("add habit: %w", err)
	}
	if !ok {
		return nil, ErrHabitNameRequired
	}

	appLog.Debug("habit added", "id", habit.ID, "name", habit.Name)
	return &habit, nil
}

// DeleteHabit 删除习惯并级联清理其完成标记；习惯不存在时返回 false 且不报错
func (s *HabitService) DeleteHabit(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, touched, err := s.repo.DeleteHabit(id)
	if err != nil {
		return false, fmt.Errorf("delete habit: %w", err)
	}

	if removed {
		appLog.Debug("habit deleted", "id", id, "dates", touched)
	}
	return removed, nil
}

// ToggleCompletion 切换习惯在某日的完成状态并返回新状态。
// 与索引本身不同，这里会拒绝未知习惯，避免索引中出现无主 ID。
func (s *HabitService) ToggleCompletion(habitID, date string) (bool, error) {
	if _, err := tracker.ParseDateKey(date); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, exists, err := s.repo.GetHabit(habitID)
	if err != nil {
		return false, fmt.Errorf("find habit: %w", err)
	}
	if !exists {
		return false, ErrHabitNotFound
	}

	completed, err := s.repo.ToggleCompletion(habitID, date)
	if err != nil {
		return false, fmt.Errorf("toggle completion: %w", err)
	}

	appLog.Debug("completion toggled", "habit", habitID, "date", date, "completed", completed)
	return completed, nil
}

// IsCompleted 查询完成状态；没有记录的日期一律返回 false
func (s *HabitService) IsCompleted(habitID, date string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	completed, err := s.repo.IsCompleted(habitID, date)
	if err != nil {
		return false, fmt.Errorf("is completed: %w", err)
	}
	return completed, nil
}

// Habits 返回按插入顺序排列的习惯副本
func (s *HabitService) Habits() ([]tracker.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	habits, err := s.repo.ListHabits()
	if err != nil {
		return nil, fmt.Errorf("list habits: %w", err)
	}
	return habits, nil
}

// Completions 返回完成索引的快照
func (s *HabitService) Completions() (map[string][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot, err := s.repo.Completions()
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}
	return snapshot, nil
}

// cleanIcon 去掉标签只保留纯文本图标；实体还原后仍含尖括号的输入整体丢弃
func (s *HabitService) cleanIcon(icon string) string {
	text := strings.TrimSpace(html.UnescapeString(s.sanitizer.Sanitize(icon)))
	if strings.ContainsAny(text, "<>") {
		return ""
	}
	return text
}
