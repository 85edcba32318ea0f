package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"expensify/internal/config"
	"expensify/internal/database"
	"expensify/internal/handlers"
	"expensify/internal/identity"
	"expensify/internal/logger"
	"expensify/internal/middleware"
	"expensify/internal/services"
	"expensify/internal/storage"
	"expensify/internal/validator"

	_ "expensify/internal/docs" // Import swagger docs
)

// @title           Expensify API
// @version         1.0
// @description     Expensify is a personal asset-tracking service: generic assets, real-estate properties, and the documents attached to them.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Object storage
	store, err := storage.NewMinioStore(
		appConfig.S3Endpoint,
		appConfig.S3AccessKey,
		appConfig.S3SecretKey,
		appConfig.S3Bucket,
		appConfig.S3UseSSL,
		appConfig.S3PublicURL,
	)
	if err != nil {
		return fmt.Errorf("failed to init object storage: %w", err)
	}

	// Identity provider adapter
	verifier := identity.NewJWTVerifier(appConfig.JWTSecret, appConfig.JWTIssuer)

	// Custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	assetService := services.NewAssetService(db, store)
	realEstateService := services.NewRealEstateService(db, store)
	documentService := services.NewDocumentService(db, store)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	assetHandler := handlers.NewAssetHandler(assetService, auditService)
	realEstateHandler := handlers.NewRealEstateHandler(realEstateService, auditService)
	documentHandler := handlers.NewDocumentHandler(documentService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group, all routes behind bearer auth
	v1 := router.Group("/api/v1")
	v1.Use(middleware.Auth(verifier))

	uploadLimit := middleware.UploadRateLimit("30-M")

	// Asset routes
	assets := v1.Group("/assets")
	assets.POST("", assetHandler.CreateAsset)
	assets.GET("", assetHandler.ListAssets)
	assets.GET("/:id", assetHandler.GetAsset)
	assets.PUT("/:id", assetHandler.UpdateAsset)
	assets.DELETE("/:id", assetHandler.DeleteAsset)
	assets.POST("/:id/documents", uploadLimit, documentHandler.UploadAssetDocument)
	assets.GET("/:id/documents", documentHandler.ListAssetDocuments)

	// Real-estate routes
	realEstate := v1.Group("/real-estate")
	realEstate.POST("", realEstateHandler.CreateRealEstate)
	realEstate.GET("", realEstateHandler.ListRealEstate)
	realEstate.GET("/:id", realEstateHandler.GetRealEstate)
	realEstate.PUT("/:id", realEstateHandler.UpdateRealEstate)
	realEstate.DELETE("/:id", realEstateHandler.DeleteRealEstate)

	// Document routes
	documents := v1.Group("/documents")
	documents.POST("/:assetType/:objectId", uploadLimit, documentHandler.UploadDocument)
	documents.GET("/:assetType/:objectId", documentHandler.ListDocuments)
	documents.DELETE("/:documentId", documentHandler.DeleteDocument)

	log.Infof("Starting Expensify backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
