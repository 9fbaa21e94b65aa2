package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/habitgrid/internal/service"
	"github.com/habitgrid/internal/tracker"
	"github.com/habitgrid/internal/view"
)

type habitPayload struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type togglePayload struct {
	HabitID string `json:"habit_id"`
	Date    string `json:"date"`
}

// ListHabits 返回有序习惯列表 JSON
func (a *API) ListHabits(c *gin.Context) {
	habits, err := a.habits.Habits()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list habits")
		return
	}

	items := make([]gin.H, 0, len(habits))
	for _, habit := range habits {
		items = append(items, habitToPayload(habit))
	}

	c.JSON(http.StatusOK, gin.H{"habits": items})
}

// CreateHabit 创建习惯；表单提交时名称为空会被静默忽略并重定向回主页
func (a *API) CreateHabit(c *gin.Context) {
	var payload habitPayload
	if isJSONRequest(c) {
		if !bindJSON(c, &payload, "invalid request payload") {
			return
		}
	} else {
		payload.Name = c.PostForm("name")
		payload.Icon = c.PostForm("icon")
	}

	habit, err := a.habits.AddHabit(payload.Name, payload.Icon)
	if isFormRequest(c) {
		if err != nil && !errors.Is(err, service.ErrHabitNameRequired) {
			respondError(c, http.StatusInternalServerError, "failed to add habit")
			return
		}
		redirectToTracker(c)
		return
	}
	if err != nil {
		handleHabitError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"habit": habitToPayload(*habit)})
}

// DeleteHabit 删除习惯；不存在的 ID 不视为错误
func (a *API) DeleteHabit(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		respondError(c, http.StatusBadRequest, "invalid habit id")
		return
	}

	deleted, err := a.habits.DeleteHabit(id)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to delete habit")
		return
	}

	if isFormRequest(c) {
		redirectToTracker(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// ListCompletions 返回完成索引快照：日期键 -> 习惯 ID 列表
func (a *API) ListCompletions(c *gin.Context) {
	completions, err := a.habits.Completions()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to list completions")
		return
	}

	c.JSON(http.StatusOK, gin.H{"completions": completions})
}

// GetCompletionStatus 查询单个 (habit, date) 的完成状态
func (a *API) GetCompletionStatus(c *gin.Context) {
	habitID := strings.TrimSpace(c.Query("habit_id"))
	date := c.Query("date")
	if habitID == "" || date == "" {
		respondError(c, http.StatusBadRequest, "habit_id and date are required")
		return
	}

	completed, err := a.habits.IsCompleted(habitID, date)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to check completion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit_id": habitID, "date": date, "completed": completed})
}

// ToggleCompletion 切换打卡状态
func (a *API) ToggleCompletion(c *gin.Context) {
	var payload togglePayload
	if isJSONRequest(c) {
		if !bindJSON(c, &payload, "invalid request payload") {
			return
		}
	} else {
		payload.HabitID = c.PostForm("habit_id")
		payload.Date = c.PostForm("date")
	}

	habitID := strings.TrimSpace(payload.HabitID)
	completed, err := a.habits.ToggleCompletion(habitID, payload.Date)
	if isFormRequest(c) {
		if err != nil && !isClientError(err) {
			respondError(c, http.StatusInternalServerError, "failed to toggle completion")
			return
		}
		redirectToTracker(c)
		return
	}
	if err != nil {
		handleHabitError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit_id": habitID, "date": payload.Date, "completed": completed})
}

// ListIcons 返回图标选择器的候选图标
func (a *API) ListIcons(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"icons": view.HabitIconOptions(), "default": view.DefaultHabitIcon})
}

func habitToPayload(habit tracker.Habit) gin.H {
	item := gin.H{
		"id":   habit.ID,
		"name": habit.Name,
	}
	if habit.Icon != "" {
		item["icon"] = habit.Icon
	}
	return item
}

func isClientError(err error) bool {
	return errors.Is(err, service.ErrHabitNotFound) ||
		errors.Is(err, service.ErrHabitNameRequired) ||
		errors.Is(err, service.ErrInvalidDateKey) ||
		errors.Is(err, service.ErrInvalidSelection)
}

func handleHabitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrHabitNotFound):
		respondError(c, http.StatusNotFound, "habit not found")
	case errors.Is(err, service.ErrHabitNameRequired):
		respondError(c, http.StatusBadRequest, "habit name is required")
	case errors.Is(err, service.ErrInvalidDateKey):
		respondError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
	case errors.Is(err, service.ErrInvalidSelection):
		respondError(c, http.StatusBadRequest, "invalid year or month")
	default:
		respondError(c, http.StatusInternalServerError, "operation failed")
	}
}
