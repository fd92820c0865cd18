package api

import (
	stdhttp "net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"eventbackend/internal/auth"
	h "eventbackend/internal/http/handlers"
	"eventbackend/internal/http/middleware"
)

// Deps is everything the router needs to mount the API.
type Deps struct {
	Handler        h.Handler
	Tokens         auth.Issuer
	Metrics        *middleware.Metrics
	Log            *logrus.Entry
	CORSOrigins    []string
	RequestTimeout time.Duration
}

// Roles allowed to modify users and user events.
var editorRoles = []string{"ADMIN", "MANAGER"}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(d.Log), gin.Recovery(), middleware.CORS(d.CORSOrigins))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		d.Log.WithError(err).Warn("failed to set trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "route not found",
			"code":       "not_found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	hd := d.Handler
	requireAuth := middleware.Auth(d.Tokens)
	requireEditor := middleware.RequireRoles(editorRoles...)

	api := r.Group("/api", middleware.Timeout(d.RequestTimeout))
	{
		api.GET("/health", hd.Health)
		api.GET("/db-check", hd.DBCheck)

		authGroup := api.Group("/auth")
		authGroup.POST("/signin", hd.SignIn)
		authGroup.POST("/refresh", hd.Refresh)

		users := api.Group("/users")
		users.GET("/getAllUsers", hd.GetAllUsers)
		users.GET("/filterUsers", hd.FilterUsers)
		users.GET("/totalUsers", hd.TotalUsers)
		users.GET("/:id", hd.GetUser)
		users.PUT("/:id", requireAuth, requireEditor, hd.UpdateUser)

		events := api.Group("/userEvents")
		events.GET("/getAllUserEvents", hd.GetAllUserEvents)
		events.GET("/totalUserEvents", hd.TotalUserEvents)
		events.PUT("/:id", requireAuth, requireEditor, hd.UpdateUserEvent)

		gifts := api.Group("/userGifts")
		gifts.GET("/getAllUserGifts", hd.GetAllUserGifts)
		gifts.GET("/filterUserGifts", hd.FilterUserGifts)
		gifts.GET("/getTotalUserGifts", hd.TotalUserGifts)
	}

	return r
}
