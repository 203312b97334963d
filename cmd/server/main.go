package main

import (
	"log"
	"net/http"

	_ "helpugee/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"helpugee/internal/auth"
	"helpugee/internal/cache"
	"helpugee/internal/config"
	"helpugee/internal/db"
	"helpugee/internal/handler"
	"helpugee/internal/model"
	"helpugee/internal/repository"
	"helpugee/internal/router"
	"helpugee/internal/service"
)

// @title Helpugee API
// @version 1.0
// @description REST backend for the public map and the administrative console.
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Section{},
		&model.User{},
		&model.Feature{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	sectionRepo := repository.NewSectionRepository(gormDB)
	featureRepo := repository.NewFeatureRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.AccessTokenSecret)
	authMW := auth.NewMiddleware(jwtService, userRepo, sectionRepo)

	// Initialize services
	authService := service.NewAuthService(userRepo, sectionRepo, jwtService)
	userService := service.NewUserService(userRepo)
	sectionService := service.NewSectionService(sectionRepo)
	featureService := service.NewFeatureService(featureRepo, cacheClient)

	// Initialize handlers
	loginHandler := handler.NewLoginHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	sectionHandler := handler.NewSectionHandler(sectionService)
	featureHandler := handler.NewFeatureHandler(featureService)

	// Register routes
	router.Register(
		e,
		cfg,
		authMW,
		loginHandler,
		userHandler,
		sectionHandler,
		featureHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
