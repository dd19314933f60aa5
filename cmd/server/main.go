package main

import (
	"context"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"onboardo/internal/cache"
	"onboardo/internal/config"
	"onboardo/internal/db"
	"onboardo/internal/handler"
	"onboardo/internal/model"
	"onboardo/internal/repository"
	"onboardo/internal/router"
	"onboardo/internal/service"
	"onboardo/internal/session"
	"onboardo/internal/view"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	// Run migrations for all models; the repository_user join table is
	// created alongside.
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Repository{},
	); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err := cacheClient.Ping(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("redis init")
	}

	sessions := session.NewStore(cacheClient, cfg.SessionTTL)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	repoRepo := repository.NewRepositoryRepository(gormDB)
	favoriteRepo := repository.NewFavoriteRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo)
	repositoryService := service.NewRepositoryService(repoRepo)
	favoriteService := service.NewFavoriteService(repositoryService, favoriteRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, sessions, cfg)
	repositoryHandler := handler.NewRepositoryHandler(repositoryService, sessions)
	favoriteHandler := handler.NewFavoriteHandler(favoriteService, sessions)

	e := echo.New()
	e.HideBanner = true

	renderer, err := view.New()
	if err != nil {
		logger.Fatal().Err(err).Msg("template init")
	}
	e.Renderer = renderer

	router.Register(e, cfg, sessions, repositoryHandler, authHandler, favoriteHandler)

	addr := ":" + cfg.ServerPort
	logger.Info().Str("addr", addr).Msg("starting server")
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server start")
	}
}
