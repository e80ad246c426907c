package handler

import (
	"net/http"
	"slices"
	"time"

	"github.com/BloggingApp/blog-store/internal/config"
	"github.com/BloggingApp/blog-store/internal/dto"
	"github.com/BloggingApp/blog-store/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	services *service.Service
	logger   *zap.Logger
	cfg      config.HTTPConfig
}

func New(services *service.Service, logger *zap.Logger, cfg config.HTTPConfig) *Handler {
	return &Handler{
		services: services,
		logger:   logger,
		cfg:      cfg,
	}
}

func (h *Handler) InitRoutes() *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(h.requestLoggingMiddleware)
	r.Use(cors.New(h.corsConfig()))

	r.GET("/health", h.health)

	v1 := r.Group("/api/v1")
	{
		posts := v1.Group("/posts")
		{
			posts.GET("", h.postsGetPublished)
			posts.GET("/:slug", h.postsGetBySlug)
			posts.GET("/:slug/related", h.postsGetRelated)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", h.categoriesGet)
			categories.GET("/:categoryID/posts", h.categoriesGetPosts)
		}

		dashboard := v1.Group("/dashboard", h.dashboardMiddleware)
		{
			dashboardPosts := dashboard.Group("/posts")
			{
				dashboardPosts.GET("", h.dashboardPostsGet)
				dashboardPosts.POST("", h.dashboardPostsCreate)

				post := dashboardPosts.Group("/:postID")
				{
					post.GET("", h.dashboardPostsGetByID)
					post.PATCH("", h.dashboardPostsUpdate)
					post.DELETE("", h.dashboardPostsDelete)
				}
			}

			dashboard.POST("/reset", h.dashboardReset)
		}
	}

	return r
}

// corsConfig allows any origin without credentials when no origin or "*"
// is configured, and the listed origins with credentials otherwise.
func (h *Handler) corsConfig() cors.Config {
	cfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}

	if len(h.cfg.ClientOrigins) == 0 || slices.Contains(h.cfg.ClientOrigins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = h.cfg.ClientOrigins
	cfg.AllowCredentials = true
	return cfg
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewBasicResponse(true, "ok"))
}
