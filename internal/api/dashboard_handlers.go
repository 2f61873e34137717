package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/calorietracker/internal/service"
)

func GetDashboard(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), service.BuildDashboard(app.Seed().Today), nil)
	}
}

func GetNav(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.DefaultQuery("path", "/")
		HandleSuccess(c, app.Logger(), service.NavItems(path), nil)
	}
}
