package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/cache"
	"github.com/inkwellhq/inkwell/internal/db"
	"github.com/inkwellhq/inkwell/pkg/config"
	"github.com/inkwellhq/inkwell/pkg/logging"
)

// Router sets up API routes
type Router struct {
	posts    *PostHandler
	comments *CommentHandler
	profile  *ProfileHandler
	gate     *auth.Gate
	db       *db.DB
	cache    *cache.Cache
	logger   *zap.Logger
}

// NewRouter creates a new API router
func NewRouter(database *db.DB, redisCache *cache.Cache, gate *auth.Gate, cfg *config.Config) *Router {
	repo := db.NewRepository(database.DB)
	posts := db.NewPostRepository(repo)
	comments := db.NewCommentRepository(repo)
	users := db.NewUserRepository(repo)

	return &Router{
		posts:    NewPostHandler(posts, users, redisCache, &cfg.Content),
		comments: NewCommentHandler(comments, posts),
		profile:  NewProfileHandler(users),
		gate:     gate,
		db:       database,
		cache:    redisCache,
		logger:   logging.GetLogger().With(zap.String("component", "api-router")),
	}
}

// SetupRoutes sets up all API routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check endpoints
	engine.GET("/health", r.healthHandler)
	engine.GET("/.well-known/healthcheck.json", r.healthHandler)

	apiGroup := engine.Group("/api")
	apiGroup.Use(r.gate.Identity())

	posts := apiGroup.Group("/posts")
	posts.GET("/user/:userId", r.posts.ListByAuthor)
	posts.GET("/featured", r.posts.Featured)
	posts.GET("/trending", r.posts.Trending)
	posts.GET("/:id", r.posts.Get)
	posts.POST("", r.gate.Protect(), r.posts.Create)
	posts.DELETE("/:id", r.gate.Protect(), r.posts.Delete)
	posts.PUT("/:id/like", r.gate.Protect(), r.posts.Like)
	posts.PUT("/profile", r.gate.Protect(), r.profile.Update)

	comments := apiGroup.Group("/comments")
	comments.GET("/post/:postId", r.comments.ListForPost)
	comments.POST("/post/:postId", r.gate.Protect(), r.comments.Create)
	comments.DELETE("/:id", r.gate.Protect(), r.comments.Delete)
}

// healthHandler handles health check requests
func (r *Router) healthHandler(c *gin.Context) {
	ctx := c.Request.Context()

	status := "OK"
	checks := gin.H{}

	if err := r.db.Health(ctx); err != nil {
		status = "DEGRADED"
		checks["database"] = err.Error()
	} else {
		checks["database"] = "ok"
	}

	if r.cache != nil {
		if err := r.cache.Health(ctx); err != nil {
			status = "DEGRADED"
			checks["redis"] = err.Error()
		} else {
			checks["redis"] = "ok"
		}
	}

	code := http.StatusOK
	if status != "OK" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":  status,
		"service": "inkwell-api",
		"time":    time.Now().UTC().Format(time.RFC3339),
		"checks":  checks,
	})
}
