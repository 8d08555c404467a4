package httpapi

import (
	"errors"
	"net/http"

	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
	"github.com/gin-gonic/gin"
)

// Client-facing messages.
const (
	MsgUnauthorized     = "Not authorized, token missing or invalid"
	MsgInvalidBody      = "Invalid request body"
	MsgRouteNotFound    = "API endpoint not found"
	MsgTaskNotFound     = "Task not found"
	MsgUserNotFound     = "User not found"
	MsgInternal         = "Internal server error"
	MsgHealthy          = "TaskMate API is running"
	MsgUserRegistered   = "User registered successfully"
	MsgLoginSuccessful  = "Login successful"
	MsgPasswordReset    = "Password reset successfully"
	MsgTaskCreated      = "Task created successfully"
	MsgTaskUpdated      = "Task updated successfully"
	MsgTaskDeleted      = "Task deleted successfully"
	MsgFetchTasksFailed = "Server error while fetching tasks"
	MsgCreateTaskFailed = "Server error while creating task"
	MsgUpdateTaskFailed = "Server error while updating task"
	MsgDeleteTaskFailed = "Server error while deleting task"
)

func respond(c *gin.Context, status int, message string, data gin.H) {
	body := gin.H{"success": true}
	if message != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	c.JSON(status, body)
}

func fail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}

// writeError maps a service error onto the response envelope. fallback is
// the message used for unexpected failures.
func (a *API) writeError(c *gin.Context, err error, fallback string) {
	var verr *common.ValidationError
	switch {
	case errors.As(err, &verr):
		fail(c, http.StatusBadRequest, verr.Message)
	case errors.Is(err, common.ErrDuplicateEmail):
		fail(c, http.StatusBadRequest, common.ErrDuplicateEmail.Error())
	case errors.Is(err, common.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired):
		fail(c, http.StatusUnauthorized, MsgUnauthorized)
	case errors.Is(err, common.ErrUserNotFound):
		fail(c, http.StatusNotFound, MsgUserNotFound)
	case errors.Is(err, common.ErrorNotFound):
		fail(c, http.StatusNotFound, MsgTaskNotFound)
	default:
		a.internalError(c, err, fallback)
	}
}

func (a *API) internalError(c *gin.Context, err error, message string) {
	a.log.Error(c.Request.Context(), message, "request_id", requestID(c), "error", err)
	body := gin.H{"success": false, "message": message}
	if a.development && err != nil {
		body["error"] = err.Error()
	}
	c.AbortWithStatusJSON(http.StatusInternalServerError, body)
}
