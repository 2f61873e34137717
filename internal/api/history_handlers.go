package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/calorietracker/internal/chart"
	"github.com/yourname/calorietracker/internal/service"
)

func GetHistory(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := service.BuildHistory(c.DefaultQuery("period", "week"), app.Seed().Week)
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Invalid history request")
			return
		}
		HandleSuccess(c, app.Logger(), view, nil)
	}
}

func GetHistoryChart(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var buf bytes.Buffer
		if err := chart.RenderHistory(&buf, app.Seed().Week); err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to render chart")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}
