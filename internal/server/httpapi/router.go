package httpapi

import (
	"net/http"
	"time"

	"github.com/Shahzad-Ali-44/TaskMate/internal/common"
	"github.com/Shahzad-Ali-44/TaskMate/internal/logging"
	"github.com/Shahzad-Ali-44/TaskMate/internal/server/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// MaxBodyBytes caps request bodies.
const MaxBodyBytes = 10 << 20

// API holds the handler dependencies.
type API struct {
	users       UserService
	tasks       TaskService
	log         logging.Logger
	environment string
	development bool
	frontendURL string
	now         func() time.Time
}

func New(cfg *config.Config, us UserService, ts TaskService, l logging.Logger) *API {
	return &API{
		users:       us,
		tasks:       ts,
		log:         l.With("module", "http_api"),
		environment: cfg.Environment,
		development: cfg.IsDevelopment(),
		frontendURL: cfg.FrontendURL,
		now:         time.Now,
	}
}

// Router builds the gin engine with all middleware and routes.
func (a *API) Router() *gin.Engine {
	if !a.development {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(a.requestID(), a.requestLogger(), gin.CustomRecovery(a.recoverPanic), limitBody(MaxBodyBytes))
	if a.frontendURL != "" {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     []string{a.frontendURL},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Origin", "Content-Type", common.AuthorizationHeaderName, common.RequestIDHeaderName},
			ExposeHeaders:    []string{common.RequestIDHeaderName},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	api := r.Group("/api")
	api.GET("/health", a.health)

	authGroup := api.Group("/auth")
	authGroup.POST("/signup", a.signup)
	authGroup.POST("/login", a.login)
	authGroup.POST("/check-email", a.checkEmail)
	authGroup.POST("/reset-password", a.resetPassword)
	authGroup.GET("/me", a.authenticate(), a.me)

	tasks := api.Group("/tasks", a.authenticate())
	tasks.GET("", a.listTasks)
	tasks.POST("", a.createTask)
	tasks.PUT("/:id", a.updateTask)
	tasks.DELETE("/:id", a.deleteTask)

	r.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, MsgRouteNotFound)
	})

	return r
}

func (a *API) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     MsgHealthy,
		"timestamp":   a.now().UTC().Format(time.RFC3339),
		"environment": a.environment,
	})
}
