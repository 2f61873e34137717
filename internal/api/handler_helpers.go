package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/yourname/calorietracker/internal"
	"github.com/yourname/calorietracker/internal/auth"
	"github.com/yourname/calorietracker/internal/response"
	"github.com/yourname/calorietracker/internal/service"
)

func HandleError(c *gin.Context, logger internal.Logger, err error, status int, msg string) {
	writeError(c, logger, err, status, msg, nil)
}

// HandleErrorNotify is HandleError plus a notification for the client to show.
func HandleErrorNotify(c *gin.Context, logger internal.Logger, err error, status int, msg string, note internal.Notification) {
	writeError(c, logger, err, status, msg, &note)
}

func writeError(c *gin.Context, logger internal.Logger, err error, status int, msg string, note *internal.Notification) {
	requestID := c.GetString("request_id")
	if status >= 500 {
		logger.Errorf("[request_id=%s] %s: %v", requestID, msg, err)
	} else {
		logger.Warnf("[request_id=%s] %s: %v", requestID, msg, err)
	}
	var resp response.APIResponse
	switch status {
	case 400:
		resp = response.BadRequest(msg + ": " + err.Error())
	case 404:
		resp = response.NotFound(msg + ": " + err.Error())
	case 500:
		resp = response.InternalError(msg + ": " + err.Error())
	default:
		resp = response.NewAppError(status, msg+": "+err.Error())
	}
	resp.Notification = note
	c.JSON(status, resp)
}

func HandleSuccess(c *gin.Context, logger internal.Logger, data interface{}, meta map[string]any) {
	requestID := c.GetString("request_id")
	logger.Infof("[request_id=%s] Success", requestID)
	c.JSON(http.StatusOK, response.Success(data, meta))
}

// HandleNotify answers with status, data and a notification.
func HandleNotify(c *gin.Context, logger internal.Logger, status int, data interface{}, note internal.Notification) {
	requestID := c.GetString("request_id")
	logger.Infof("[request_id=%s] %s", requestID, note.Title)
	c.JSON(status, response.Success(data, nil).WithNotification(note))
}

// statusFor maps service and validation errors onto HTTP statuses.
func statusFor(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs),
		errors.Is(err, service.ErrUnknownMeal),
		errors.Is(err, service.ErrUnknownPeriod),
		errors.Is(err, service.ErrInvalidNumber),
		errors.Is(err, service.ErrInvalidHeight),
		errors.Is(err, service.ErrInvalidWeight),
		errors.Is(err, service.ErrPasswordMatch),
		errors.Is(err, service.ErrEmailRequired):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrEntryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func currentUser(c *gin.Context) *internal.User {
	return c.MustGet(auth.UserKey).(*internal.User)
}
