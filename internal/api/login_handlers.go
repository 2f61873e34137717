package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yourname/calorietracker/internal/auth"
	"github.com/yourname/calorietracker/internal/service"
)

func GetLogin(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		HandleSuccess(c, app.Logger(), service.DemoLoginPage(), nil)
	}
}

func PostLogin(app App, token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateLoginRequest(&req); err != nil {
			if errors.Is(err, service.ErrPasswordMatch) {
				HandleErrorNotify(c, app.Logger(), err, http.StatusBadRequest, "Signup failed", service.NotePasswordMismatch)
				return
			}
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Login validation failed")
			return
		}

		result, err := service.Login(c.Request.Context(), app.UserRepo(), &req, auth.DemoUser(token))
		if err != nil {
			HandleError(c, app.Logger(), err, http.StatusInternalServerError, "Login failed")
			return
		}
		HandleNotify(c, app.Logger(), http.StatusOK, result, result.Notification)
	}
}

func PostLoginResetPassword(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.ResetPasswordRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			HandleError(c, app.Logger(), err, http.StatusBadRequest, "Invalid JSON")
			return
		}
		if err := service.ValidateResetPassword(&req); err != nil {
			HandleErrorNotify(c, app.Logger(), err, http.StatusBadRequest, "Password reset failed", service.NoteEmailRequired)
			return
		}
		HandleNotify(c, app.Logger(), http.StatusOK, nil, service.NoteResetEmailSent)
	}
}
