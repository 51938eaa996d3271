package router

import (
	"pic-share-server/internal/config"
	"pic-share-server/internal/handler"
	"pic-share-server/internal/middleware"
	"pic-share-server/internal/service"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Router struct {
	handler *handler.Handler
	rdb     *redis.Client
}

func NewRouter(h *handler.Handler, rdb *redis.Client) *Router {
	return &Router{
		handler: h,
		rdb:     rdb,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := config.Get()

	// 注册全局安全标头与请求体大小限制
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.BodyLimitMiddleware())

	// 会话存储：核心只读写不透明的用户 ID
	store := cookie.NewStore([]byte(cfg.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   cfg.Session.MaxAgeH * 3600,
		HttpOnly: true,
	})
	r.Use(sessions.Sessions(cfg.Session.Name, store))

	// 认证限流：登录与注册共用同一个限流实例
	authLimiter := middleware.RateLimitMiddleware(cfg.RateLimit, rt.rdb, service.RedisKey(cfg.Redis, "ratelimit", "auth"))

	h := rt.handler

	r.GET("/", h.Index)
	r.GET("/gallery", h.Gallery)

	r.GET("/login", h.LoginPage)
	r.POST("/login", authLimiter, h.Login)
	r.GET("/register", h.RegisterPage)
	r.POST("/register", authLimiter, h.Register)
	r.GET("/logout", h.Logout)
	r.POST("/logout", h.Logout)

	r.GET("/user/:id", h.GetProfile)
	r.POST("/user/:id", middleware.SessionAuth(), h.UpdateAbout)

	upload := r.Group("/upload", middleware.SessionAuth(), middleware.UploadBodyLimitMiddleware(cfg.Upload))
	upload.GET("", h.UploadPage)
	upload.POST("", h.Upload)

	r.GET("/images/:filename", h.ShowImage)
	r.GET("/download/:filename", h.Download)
}
