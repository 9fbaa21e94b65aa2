package service

import (
	"fmt"
	"time"

	"github.com/habitgrid/internal/tracker"
)

// HabitMark 表示某习惯在某日是否完成
type HabitMark struct {
	Habit     tracker.Habit `json:"habit"`
	Completed bool          `json:"completed"`
}

// DayView 是渲染用的日历格子，空格没有 Marks
type DayView struct {
	tracker.Cell
	Today bool        `json:"today"`
	Marks []HabitMark `json:"marks,omitempty"`
}

// MonthView 汇总渲染一个月所需的全部数据
type MonthView struct {
	Selection Selection       `json:"selection"`
	Habits    []tracker.Habit `json:"habits"`
	Weeks     [][]DayView     `json:"weeks"`
}

// MonthView 读取当前习惯与完成索引并与所选年月的网格交叉。
// now 决定哪个格子是今天，每次渲染都应传入当前时间。
func (s *HabitService) MonthView(sel Selection, now time.Time) (*MonthView, error) {
	s.mu.Lock()
	habits, err := s.repo.ListHabits()
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("list habits: %w", err)
	}
	snapshot, err := s.repo.Completions()
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("list completions: %w", err)
	}

	done := make(map[string]map[string]struct{}, len(snapshot))
	for date, ids := range snapshot {
		set := make(map[string]struct{}, len(ids))
		for _, id := range ids {
			set[id] = struct{}{}
		}
		done[date] = set
	}

	grid := sel.Grid()
	padded := grid.PaddedWeeks()
	weeks := make([][]DayView, 0, len(padded))
	for _, week := range padded {
		row := make([]DayView, 0, len(week))
		for _, cell := range week {
			day := DayView{Cell: cell, Today: grid.IsToday(cell, now)}
			if !cell.Blank() {
				day.Marks = make([]HabitMark, 0, len(habits))
				for _, habit := range habits {
					_, completed := done[cell.Date][habit.ID]
					day.Marks = append(day.Marks, HabitMark{Habit: habit, Completed: completed})
				}
			}
			row = append(row, day)
		}
		weeks = append(weeks, row)
	}

	return &MonthView{Selection: sel, Habits: habits, Weeks: weeks}, nil
}
