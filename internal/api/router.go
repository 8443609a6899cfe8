package api

import (
	"net/http"

	"github.com/filipefdm/rocketseat-prompt-manager/config"
	_ "github.com/filipefdm/rocketseat-prompt-manager/docs"
	promptRoutes "github.com/filipefdm/rocketseat-prompt-manager/internal/api/v1/prompt"
	"github.com/filipefdm/rocketseat-prompt-manager/internal/middleware"
	"github.com/filipefdm/rocketseat-prompt-manager/internal/repository"
	"github.com/filipefdm/rocketseat-prompt-manager/internal/services"
	"github.com/filipefdm/rocketseat-prompt-manager/internal/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

func NewRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300, // Maximum age for preflight requests
	}))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/healthz", healthCheck(db))

	promptService := services.NewPromptService(repository.NewPromptRepository(db))

	v1 := router.Group("/api/v1")
	{
		promptRoutes.RegisterRoutes(v1, promptRoutes.NewHandler(promptService))
	}

	return router
}

func healthCheck(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse(http.StatusServiceUnavailable, "Database unavailable"))
			return
		}
		c.JSON(http.StatusOK, utils.NewSuccessResponse("OK", nil))
	}
}
