package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/calorietracker/internal/service"
)

func GetSettings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		d := app.Seed()
		view, err := service.GetSettings(c.Request.Context(), app.SettingsRepo(), user, d.Settings, d.Account)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch settings")
			return
		}
		HandleSuccess(c, app.Logger(), view, nil)
	}
}

func PutSettings(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.SettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateSettingsRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Settings validation failed")
			return
		}

		view, err := service.SaveSettings(c.Request.Context(), app.SettingsRepo(), user, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save settings")
			return
		}
		HandleNotify(c, app.Logger(), http.StatusOK, view, service.NoteSettingsSaved)
	}
}

func PostSettingsResetPassword(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleNotify(c, app.Logger(), http.StatusOK, nil, service.NotePasswordReset)
	}
}

func PostSignOut(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleNotify(c, app.Logger(), http.StatusOK, nil, service.NoteSignedOut)
	}
}
