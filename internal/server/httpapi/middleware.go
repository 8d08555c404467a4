package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxRequestID   = "requestID"
	ctxCurrentUser = "currentUser"

	maxRequestIDLength = 64
)

// requestID propagates a well-formed incoming X-Request-ID or mints a uuid.
func (a *API) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(common.RequestIDHeaderName))
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		c.Set(ctxRequestID, id)
		c.Header(common.RequestIDHeaderName, id)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}

func (a *API) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		a.log.Info(c.Request.Context(), "request",
			"request_id", requestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
		)
	}
}

func (a *API) recoverPanic(c *gin.Context, recovered any) {
	a.internalError(c, fmt.Errorf("panic: %v", recovered), MsgInternal)
}

func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

// authenticate requires "Authorization: Bearer <token>" and stores the
// resolved user in the gin context. Missing, malformed, expired and
// unknown-user tokens all get the same 401.
func (a *API) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, common.BearerPrefix)
		token = strings.TrimSpace(token)
		if !ok || token == "" {
			fail(c, http.StatusUnauthorized, MsgUnauthorized)
			return
		}

		user, err := a.users.Authenticate(c.Request.Context(), token)
		if err != nil {
			a.writeError(c, err, MsgInternal)
			return
		}

		c.Set(ctxCurrentUser, user)
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(ctxCurrentUser)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
