package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/calorietracker/internal/auth"
	"github.com/yourname/calorietracker/internal/config"
	"github.com/yourname/calorietracker/internal/response"
)

// NewRouter mounts every view. Login stays public; the rest needs a user,
// either from a bearer token or, with auth off, the demo user.
func NewRouter(app App, cfg *config.Config, provider auth.Provider) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware(), AccessLogMiddleware(app.Logger()))

	login := r.Group("/login")
	login.GET("", GetLogin(app))
	login.POST("", PostLogin(app, cfg.AuthToken))
	login.POST("/reset-password", PostLoginResetPassword(app))

	views := r.Group("/")
	if cfg.AuthRequired {
		views.Use(auth.AuthMiddleware(provider, cfg))
	} else {
		views.Use(auth.DemoUserMiddleware(cfg.AuthToken))
	}

	views.GET("/", GetDashboard(app))
	views.GET("/nav", GetNav(app))

	views.GET("/profile", GetProfile(app))
	views.PUT("/profile", PutProfile(app))

	views.GET("/food-log", GetFoodLog(app))
	views.POST("/food-log", PostFoodEntry(app))
	views.DELETE("/food-log/:id", DeleteFoodEntry(app))

	views.GET("/history", GetHistory(app))
	views.GET("/history/chart", GetHistoryChart(app))

	views.GET("/settings", GetSettings(app))
	views.PUT("/settings", PutSettings(app))
	views.POST("/settings/reset-password", PostSettingsResetPassword(app))
	views.POST("/settings/sign-out", PostSignOut(app))

	r.NoRoute(NotFound(app))
	return r
}

func NotFound(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		app.Logger().Warnf("[request_id=%s] no route for %s %s", c.GetString("request_id"), c.Request.Method, c.Request.URL.Path)
		c.JSON(http.StatusNotFound, response.NotFound("Page not found: "+c.Request.URL.Path))
	}
}
