package handlers

import (
	"problem_tracker/internal/logger"
	"problem_tracker/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	api := router.Group("/api")

	h.registerAuthRoutes(api)
	h.registerProtectedRoutes(api)

	return router
}

func (h *Handler) registerAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
	}
}

func (h *Handler) registerProtectedRoutes(api *gin.RouterGroup) {
	protected := api.Group("", h.userIDMiddleware)
	{
		protected.POST("/problems", h.createProblem)
		protected.GET("/problems", h.listProblems)
		protected.GET("/stats", h.getStats)
		protected.POST("/seed-data", h.seedData)
	}
}
