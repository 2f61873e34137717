package response

import "github.com/yourname/calorietracker/internal"

type APIResponse struct {
	Data         interface{}            `json:"data,omitempty"`
	Meta         map[string]any         `json:"meta,omitempty"`
	Notification *internal.Notification `json:"notification,omitempty"`
	Error        *internal.AppError     `json:"error,omitempty"`
}

func Success(data interface{}, meta map[string]any) APIResponse {
	return APIResponse{Data: data, Meta: meta, Error: nil}
}

// WithNotification attaches a client-side notification to r.
func (r APIResponse) WithNotification(n internal.Notification) APIResponse {
	r.Notification = &n
	return r
}

func BadRequest(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(400, msg)}
}

func Unauthorized(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(401, msg)}
}

func InternalError(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(500, msg)}
}

func NotFound(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(404, msg)}
}

func NewAppError(status int, msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(status, msg)}
}
