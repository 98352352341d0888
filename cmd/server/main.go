package main

import (
	"log"
	"net/http"

	_ "miniter/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"miniter/internal/auth"
	"miniter/internal/config"
	"miniter/internal/db"
	"miniter/internal/handler"
	"miniter/internal/model"
	"miniter/internal/repository"
	"miniter/internal/router"
	"miniter/internal/service"
)

// @title Miniter API
// @version 1.0
// @description Minimal micro-blogging API: sign-up, login, tweets, follows and timelines.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description Raw access token, no scheme prefix.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Tweet{},
		&model.Follow{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	tweetRepo := repository.NewTweetRepository(gormDB)
	followRepo := repository.NewFollowRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	tweetService := service.NewTweetService(tweetRepo)
	followService := service.NewFollowService(followRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	tweetHandler := handler.NewTweetHandler(tweetService)
	followHandler := handler.NewFollowHandler(followService)

	// Register routes
	router.Register(
		e,
		tokenService,
		userRepo,
		authHandler,
		tweetHandler,
		followHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
