package http

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/gdugdh24/roommate-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/roommate-backend/internal/delivery/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	searchHandler  *handler.SearchHandler
	messageHandler *handler.MessageHandler
	authMiddleware *middleware.AuthMiddleware
	logger         *zap.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	searchHandler *handler.SearchHandler,
	messageHandler *handler.MessageHandler,
	authMiddleware *middleware.AuthMiddleware,
	logger *zap.Logger,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		searchHandler:  searchHandler,
		messageHandler: messageHandler,
		authMiddleware: authMiddleware,
		logger:         logger,
	}
}

func (r *Router) Setup() *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(r.logger))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/refresh", r.authMiddleware.RequireAuth(), r.authHandler.Refresh)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			// Profile routes
			profile := protected.Group("/profile")
			{
				profile.GET("/me", r.profileHandler.GetMyProfile)
				profile.PUT("/me", r.profileHandler.UpdateMyProfile)
				profile.GET("/:id", r.profileHandler.GetProfileByID)
			}

			// Roommate search routes
			roommates := protected.Group("/roommates")
			{
				roommates.POST("/search", r.searchHandler.Search)
				roommates.GET("/:id/compatibility", r.searchHandler.Compatibility)
			}

			// Message routes
			protected.POST("/messages", r.messageHandler.SendMessage)
			protected.GET("/messages/:user_id", r.messageHandler.GetConversation)
			protected.GET("/conversations", r.messageHandler.GetConversations)
		}
	}

	return router
}

// useJSONFieldNames makes binding errors report the json name of a field.
func useJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}
