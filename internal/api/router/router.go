package router

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	_ "github.com/d60-Lab/microblog/docs"
	"github.com/d60-Lab/microblog/internal/api/handler"
	"github.com/d60-Lab/microblog/internal/api/middleware"
	"github.com/d60-Lab/microblog/internal/config"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/response"
)

// New wires the route table. Public pages take OptionalAuth so they can
// show per-viewer state; write routes take RequireAuth, which redirects to
// the login surface instead of returning 401.
func New(h *handler.Handler, auth service.AuthService, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware("microblog"))

	optional := middleware.OptionalAuth(auth)
	required := middleware.RequireAuth(auth)

	r.GET("/", optional, h.Index)
	r.GET("/group/:slug", optional, h.GroupList)
	r.GET("/profile/:username", optional, h.Profile)
	r.GET("/posts/:id", optional, h.PostDetail)

	r.POST("/create", required, h.PostCreate)
	r.POST("/posts/:id/edit", required, h.PostEdit)
	r.POST("/posts/:id/comment", required, h.AddComment)
	r.POST("/profile/:username/follow", required, h.Follow)
	r.POST("/profile/:username/unfollow", required, h.Unfollow)
	r.GET("/follow", required, h.FollowIndex)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", h.Signup)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/login", h.LoginPage)
	}

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "page not found")
	})

	return r
}
