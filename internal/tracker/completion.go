package tracker

import (
	"maps"
	"slices"
)

// CompletionIndex 记录每个日期键下已完成的习惯 ID 集合
// 不变式：日期键存在当且仅当其集合非空
// 索引本身不校验习惯是否存在，由调用方在删除习惯时调用 CascadeDelete
type CompletionIndex struct {
	byDate map[string]map[string]struct{}
}

// NewCompletionIndex 构造空索引
func NewCompletionIndex() *CompletionIndex {
	return &CompletionIndex{byDate: make(map[string]map[string]struct{})}
}

// Toggle 切换 habitID 在 date 上的完成状态，返回切换后的状态
func (idx *CompletionIndex) Toggle(habitID, date string) bool {
	set, ok := idx.byDate[date]
	if ok {
		if _, done := set[habitID]; done {
			delete(set, habitID)
			if len(set) == 0 {
				delete(idx.byDate, date)
			}
			return false
		}
	} else {
		set = make(map[string]struct{})
		idx.byDate[date] = set
	}

	set[habitID] = struct{}{}
	return true
}

// IsCompleted 日期键不存在时对所有习惯返回 false
func (idx *CompletionIndex) IsCompleted(habitID, date string) bool {
	_, ok := idx.byDate[date][habitID]
	return ok
}

// CascadeDelete 从所有日期中移除 habitID，并清理变空的日期，返回受影响的日期数
func (idx *CompletionIndex) CascadeDelete(habitID string) int {
	touched := 0
	for date, set := range idx.byDate {
		if _, ok := set[habitID]; !ok {
			continue
		}
		touched++
		delete(set, habitID)
		if len(set) == 0 {
			delete(idx.byDate, date)
		}
	}
	return touched
}

// Snapshot 返回深拷贝，每个日期下的 ID 已排序
func (idx *CompletionIndex) Snapshot() map[string][]string {
	out := make(map[string][]string, len(idx.byDate))
	for date, set := range idx.byDate {
		out[date] = slices.Sorted(maps.Keys(set))
	}
	return out
}

// Dates returns the date keys that currently hold at least one completion, sorted.
func (idx *CompletionIndex) Dates() []string {
	return slices.Sorted(maps.Keys(idx.byDate))
}

func (idx *CompletionIndex) Len() int {
	return len(idx.byDate)
}
