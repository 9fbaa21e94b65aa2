package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/habitgrid/internal/locale"
	"github.com/habitgrid/internal/service"
	"github.com/habitgrid/internal/view"
)

const (
	sessionYearKey  = "year"
	sessionMonthKey = "month"
	trackerTemplate = "tracker.html"
)

type selectionPayload struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
}

type monthOption struct {
	Value    int
	Name     string
	Selected bool
}

type yearOption struct {
	Value    int
	Selected bool
}

// ShowTracker 渲染单页习惯打卡界面
func (a *API) ShowTracker(c *gin.Context) {
	pref := a.requestLocale(c)
	text := uiText(pref.Language)
	sel := a.currentSelection(c)
	now := a.now()

	monthView, err := a.habits.MonthView(sel, now)
	if err != nil {
		c.HTML(http.StatusInternalServerError, trackerTemplate, gin.H{
			"title": text["title"],
			"text":  text,
			"lang":  pref.HTMLLang,
			"error": "failed to load habits",
		})
		return
	}

	months := make([]monthOption, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, monthOption{Value: int(m), Name: locale.MonthName(pref.Language, m), Selected: m == sel.Month})
	}

	years := make([]yearOption, 0)
	for _, y := range service.YearOptions(now, sel.Year) {
		years = append(years, yearOption{Value: y, Selected: y == sel.Year})
	}

	data := gin.H{
		"title":          text["title"],
		"text":           text,
		"lang":           pref.HTMLLang,
		"languageSwitch": buildLanguageSwitch(c),
		"habits":         monthView.Habits,
		"weeks":          monthView.Weeks,
		"weekdays":       locale.WeekdayNames(pref.Language),
		"months":         months,
		"years":          years,
		"selection":      sel,
		"monthName":      locale.MonthName(pref.Language, sel.Month),
		"icons":          view.HabitIconOptions(),
		"defaultIcon":    view.DefaultHabitIcon,
	}
	if prev, err := sel.Shift(-1); err == nil {
		data["prev"] = prev
	}
	if next, err := sel.Shift(1); err == nil {
		data["next"] = next
	}

	c.HTML(http.StatusOK, trackerTemplate, data)
}

// GetCalendar 返回某年某月的网格与打卡情况，缺省使用会话中的选择
func (a *API) GetCalendar(c *gin.Context) {
	sel := a.currentSelection(c)

	if raw := c.Query("year"); raw != "" {
		year, err := parseYear(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if sel, err = sel.SelectYear(year); err != nil {
			handleHabitError(c, err)
			return
		}
	}
	if raw := c.Query("month"); raw != "" {
		month, err := parseMonth(raw)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		if sel, err = sel.SelectMonth(month); err != nil {
			handleHabitError(c, err)
			return
		}
	}

	monthView, err := a.habits.MonthView(sel, a.now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to build calendar")
		return
	}

	grid := sel.Grid()
	c.JSON(http.StatusOK, gin.H{
		"selection":      monthView.Selection,
		"leading_blanks": grid.LeadingBlanks(),
		"days_in_month":  grid.DayCount(),
		"weeks":          monthView.Weeks,
		"habits":         monthView.Habits,
	})
}

// GetSelection 返回当前会话选择的年月
func (a *API) GetSelection(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"selection": a.currentSelection(c)})
}

// UpdateSelection 切换年份或月份，只修改会话，不触碰习惯数据
func (a *API) UpdateSelection(c *gin.Context) {
	sel := a.currentSelection(c)

	var payload selectionPayload
	if isJSONRequest(c) {
		if !bindJSON(c, &payload, "invalid request payload") {
			return
		}
	} else {
		if raw := c.PostForm("year"); raw != "" {
			year, err := parseYear(raw)
			if err != nil {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			payload.Year = &year
		}
		if raw := c.PostForm("month"); raw != "" {
			month, err := parseMonth(raw)
			if err != nil {
				respondError(c, http.StatusBadRequest, err.Error())
				return
			}
			value := int(month)
			payload.Month = &value
		}
	}

	var err error
	if payload.Year != nil {
		if sel, err = sel.SelectYear(*payload.Year); err != nil {
			handleHabitError(c, err)
			return
		}
	}
	if payload.Month != nil {
		if sel, err = sel.SelectMonth(time.Month(*payload.Month)); err != nil {
			handleHabitError(c, err)
			return
		}
	}

	if err := saveSelection(c, sel); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to save selection")
		return
	}

	if isFormRequest(c) {
		redirectToTracker(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selection": sel})
}

// currentSelection 读取会话中的年月，缺失或非法时回退到本月
func (a *API) currentSelection(c *gin.Context) service.Selection {
	fallback := service.CurrentSelection(a.now())

	session := sessions.Default(c)
	year, okYear := session.Get(sessionYearKey).(int)
	month, okMonth := session.Get(sessionMonthKey).(int)
	if !okYear || !okMonth {
		return fallback
	}

	sel, err := service.NewSelection(year, time.Month(month))
	if err != nil {
		return fallback
	}
	return sel
}

func saveSelection(c *gin.Context, sel service.Selection) error {
	session := sessions.Default(c)
	session.Set(sessionYearKey, sel.Year)
	session.Set(sessionMonthKey, int(sel.Month))
	return session.Save()
}
