package tracker

import (
	"testing"
	"time"
)

func TestGenerateGridDayCounts(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   time.Month
		days    int
		leading int
	}{
		{name: "leap february", year: 2024, month: time.February, days: 29, leading: 4},
		{name: "common february", year: 2023, month: time.February, days: 28, leading: 3},
		{name: "century non-leap", year: 1900, month: time.February, days: 28, leading: 4},
		{name: "400 leap", year: 2000, month: time.February, days: 29, leading: 2},
		{name: "starts on sunday", year: 2024, month: time.September, days: 30, leading: 0},
		{name: "starts on saturday", year: 2025, month: time.November, days: 30, leading: 6},
		{name: "december", year: 2024, month: time.December, days: 31, leading: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := GenerateGrid(tt.year, tt.month)
			if got := grid.DayCount(); got != tt.days {
				t.Fatalf("expected %d day cells, got %d", tt.days, got)
			}
			if got := grid.LeadingBlanks(); got != tt.leading {
				t.Fatalf("expected %d leading blanks, got %d", tt.leading, got)
			}
			if got := DaysInMonth(tt.year, tt.month); got != tt.days {
				t.Fatalf("DaysInMonth = %d, want %d", got, tt.days)
			}
			if got := FirstWeekday(tt.year, tt.month); got != tt.leading {
				t.Fatalf("FirstWeekday = %d, want %d", got, tt.leading)
			}
			if len(grid.Cells) != tt.days+tt.leading {
				t.Fatalf("expected %d cells, got %d", tt.days+tt.leading, len(grid.Cells))
			}
		})
	}
}

func TestGenerateGridCellsAreTaggedAndPositioned(t *testing.T) {
	grid := GenerateGrid(2024, time.March)

	// 2024-03-01 是周五
	first := grid.Cells[5]
	if first.Day != 1 || first.Date != "2024-03-01" {
		t.Fatalf("unexpected first day cell: %+v", first)
	}
	if first.Week != 0 || first.Weekday != 5 {
		t.Fatalf("unexpected position for day 1: week=%d weekday=%d", first.Week, first.Weekday)
	}

	for i, c := range grid.Cells {
		if c.Week != i/7 || c.Weekday != i%7 {
			t.Fatalf("cell %d has position (%d,%d)", i, c.Week, c.Weekday)
		}
		if c.Blank() && c.Date != "" {
			t.Fatalf("blank cell %d carries date %q", i, c.Date)
		}
	}

	last := grid.Cells[len(grid.Cells)-1]
	if last.Date != "2024-03-31" {
		t.Fatalf("expected last date 2024-03-31, got %q", last.Date)
	}
}

func TestGridWeeks(t *testing.T) {
	grid := GenerateGrid(2024, time.February)

	weeks := grid.Weeks()
	if len(weeks) != 5 {
		t.Fatalf("expected 5 weeks, got %d", len(weeks))
	}
	if len(weeks[4]) != 5 {
		t.Fatalf("expected short final week of 5 cells, got %d", len(weeks[4]))
	}

	padded := grid.PaddedWeeks()
	for i, week := range padded {
		if len(week) != 7 {
			t.Fatalf("padded week %d has %d cells", i, len(week))
		}
	}
	tail := padded[4][6]
	if !tail.Blank() || tail.Week != 4 || tail.Weekday != 6 {
		t.Fatalf("unexpected trailing padding cell: %+v", tail)
	}

	// 补位不能影响原始 Cells
	if len(grid.Cells) != 33 {
		t.Fatalf("padding leaked into cells: %d", len(grid.Cells))
	}
}

func TestGridIsToday(t *testing.T) {
	now := time.Date(2024, time.February, 14, 9, 30, 0, 0, time.Local)
	grid := GenerateGrid(2024, time.February)

	var matches int
	for _, c := range grid.Cells {
		if grid.IsToday(c, now) {
			matches++
			if c.Date != "2024-02-14" {
				t.Fatalf("unexpected today cell %q", c.Date)
			}
		}
	}
	if matches != 1 {
		t.Fatalf("expected exactly one today cell, got %d", matches)
	}

	other := GenerateGrid(2023, time.February)
	for _, c := range other.Cells {
		if other.IsToday(c, now) {
			t.Fatalf("cell %q in another year reported as today", c.Date)
		}
	}
}
