package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/calorietracker/internal/service"
)

func GetProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		p, err := service.GetProfile(c.Request.Context(), app.ProfileRepo(), user, app.Seed().Profile)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch profile")
			return
		}
		HandleSuccess(c, app.Logger(), service.BuildProfile(*p, app.Seed().Targets), nil)
	}
}

func PutProfile(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.ProfileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateProfileRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Profile validation failed")
			return
		}

		p, err := service.SaveProfile(c.Request.Context(), app.ProfileRepo(), user, &req)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save profile")
			return
		}
		HandleNotify(c, app.Logger(), http.StatusOK, service.BuildProfile(*p, app.Seed().Targets), service.NoteProfileUpdated)
	}
}
