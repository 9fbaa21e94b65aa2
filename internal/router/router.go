package router

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/habitgrid/internal/handler"
	"github.com/habitgrid/web"
)

const sessionName = "habitgrid_session"

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, sessionSecret string) *gin.Engine {
	r := gin.Default()

	// 会话只保存当前选择的年月
	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{Path: "/", HttpOnly: true, SameSite: http.SameSiteLaxMode})
	r.Use(sessions.Sessions(sessionName, store))
	r.Use(api.LocaleMiddleware())

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"sub": func(a, b int) int {
			return a - b
		},
	}).ParseFS(web.Templates, "template/*.html"))
	r.SetHTMLTemplate(tmpl)

	static, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", http.FS(static))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// 页面与表单提交
	r.GET("/", api.ShowTracker)
	r.POST("/habits", api.CreateHabit)
	r.POST("/habits/:id/delete", api.DeleteHabit)
	r.POST("/completions/toggle", api.ToggleCompletion)
	r.POST("/selection", api.UpdateSelection)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/habits", api.ListHabits)
		apiGroup.POST("/habits", api.CreateHabit)
		apiGroup.DELETE("/habits/:id", api.DeleteHabit)

		apiGroup.GET("/completions", api.ListCompletions)
		apiGroup.GET("/completions/status", api.GetCompletionStatus)
		apiGroup.POST("/completions/toggle", api.ToggleCompletion)

		apiGroup.GET("/calendar", api.GetCalendar)
		apiGroup.GET("/selection", api.GetSelection)
		apiGroup.PUT("/selection", api.UpdateSelection)

		apiGroup.GET("/icons", api.ListIcons)
	}

	return r
}
