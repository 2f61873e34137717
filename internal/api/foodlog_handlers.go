package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yourname/calorietracker/internal/service"
)

func GetFoodLog(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		search := c.Query("search")
		meal := c.Query("meal")
		if meal == "" {
			meal = service.MealFilterAll
		}
		if err := service.ValidMealFilter(meal); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid meal filter")
			return
		}

		entries, err := service.ListFoodLog(c.Request.Context(), app.FoodRepo(), user, app.Seed().FoodEntries)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch food log")
			return
		}

		view, err := service.BuildFoodLog(entries, search, meal, app.Seed().QuickAdd)
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to build food log")
			return
		}
		HandleSuccess(c, app.Logger(), view, nil)
	}
}

func PostFoodEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)

		var req service.FoodEntryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateFoodEntryRequest(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Validation failed")
			return
		}

		entry, err := service.CreateFoodEntry(c.Request.Context(), app.FoodRepo(), user, app.Seed().FoodEntries, &req, time.Now())
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to save food entry")
			return
		}
		HandleNotify(c, app.Logger(), http.StatusCreated, entry, service.NoteFoodAdded)
	}
}

func DeleteFoodEntry(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		ctx := c.Request.Context()
		seedEntries := app.Seed().FoodEntries

		if err := service.DeleteFoodEntry(ctx, app.FoodRepo(), user, seedEntries, c.Param("id")); err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to delete food entry")
			return
		}

		entries, err := service.ListFoodLog(ctx, app.FoodRepo(), user, seedEntries)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to fetch food log")
			return
		}
		view, err := service.BuildFoodLog(entries, "", service.MealFilterAll, app.Seed().QuickAdd)
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Failed to build food log")
			return
		}
		HandleNotify(c, app.Logger(), http.StatusOK, view, service.NoteFoodRemoved)
	}
}
