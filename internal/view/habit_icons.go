package view

import "slices"

// HabitIconOption describes a selectable glyph in the habit icon picker.
type HabitIconOption struct {
	Glyph string `json:"glyph"`
	Label string `json:"label"`
}

// DefaultHabitIcon 显示在图标选择按钮上，表示尚未选择
const DefaultHabitIcon = "🎯"

var habitIconDefinitions = []HabitIconOption{
	{Glyph: "💧", Label: "water"},
	{Glyph: "☀️", Label: "sun"},
	{Glyph: "🏃", Label: "run"},
	{Glyph: "💪", Label: "strength"},
	{Glyph: "📚", Label: "books"},
	{Glyph: "🧘", Label: "meditate"},
	{Glyph: "🍎", Label: "fruit"},
	{Glyph: "💤", Label: "sleep"},
	{Glyph: "📝", Label: "write"},
	{Glyph: "🎯", Label: "goal"},
	{Glyph: "🎨", Label: "art"},
	{Glyph: "🎵", Label: "music"},
	{Glyph: "📖", Label: "read"},
	{Glyph: "🚶", Label: "walk"},
	{Glyph: "🧠", Label: "learn"},
	{Glyph: "❤️", Label: "health"},
	{Glyph: "🌱", Label: "grow"},
	{Glyph: "☕", Label: "coffee"},
	{Glyph: "🍽️", Label: "meal"},
	{Glyph: "🚫", Label: "quit"},
	{Glyph: "✅", Label: "done"},
	{Glyph: "⭐", Label: "star"},
	{Glyph: "🔥", Label: "streak"},
	{Glyph: "🌙", Label: "night"},
}

// HabitIconOptions exposes the picker catalogue in display order.
func HabitIconOptions() []HabitIconOption {
	return slices.Clone(habitIconDefinitions)
}
