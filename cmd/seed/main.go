package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"onboardo/internal/config"
	"onboardo/internal/db"
	apperrors "onboardo/internal/errors"
	"onboardo/internal/model"
	"onboardo/internal/repository"
	"onboardo/internal/service"
)

var sampleRepositories = []model.Repository{
	{
		Name:        "laravel-app",
		URL:         "https://github.com/example/laravel-app",
		Description: "Main Laravel application",
		Guide:       "Welcome to the Laravel App! Start by running composer install, then copy .env.example to .env and run php artisan key:generate.",
	},
	{
		Name:        "api-service",
		URL:         "https://github.com/example/api-service",
		Description: "REST API service",
		Guide:       "This is our API service. Check the README for endpoint documentation.",
	},
	{
		Name:        "frontend",
		URL:         "https://github.com/example/frontend",
		Description: "React frontend",
		Guide:       "Run npm install followed by npm run dev to start the development server.",
	},
	{
		Name:        "mobile-app",
		URL:         "https://github.com/example/mobile-app",
		Description: "React Native mobile app",
		Guide:       "Install dependencies with npm install, then run npx expo start.",
	},
}

type sampleUser struct {
	name     string
	email    string
	password string
}

var sampleUsers = []sampleUser{
	{name: "Test User 1", email: "user1@example.com", password: "password123"},
	{name: "Test User 2", email: "user2@example.com", password: "password123"},
}

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	logger.Info().Msg("starting seed")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Repository{}); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate")
	}

	ctx := context.Background()
	repoRepo := repository.NewRepositoryRepository(gormDB)
	authService := service.NewAuthService(repository.NewUserRepository(gormDB))

	created, updated, err := seedRepositories(ctx, repoRepo, sampleRepositories)
	if err != nil {
		logger.Fatal().Err(err).Msg("seed repositories")
	}
	logger.Info().Int("created", created).Int("updated", updated).Msg("repositories seeded")

	registered, err := seedUsers(ctx, authService, sampleUsers)
	if err != nil {
		logger.Fatal().Err(err).Msg("seed users")
	}
	logger.Info().Int("registered", registered).Msg("users seeded")
}

// seedRepositories upserts the sample catalog keyed by repository name, so
// running the seed twice does not duplicate entries.
func seedRepositories(ctx context.Context, repos repository.RepositoryRepository, samples []model.Repository) (created, updated int, err error) {
	for _, sample := range samples {
		existing, err := repos.FindByName(ctx, sample.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return created, updated, err
		}

		if existing != nil {
			existing.URL = sample.URL
			existing.Description = sample.Description
			existing.Guide = sample.Guide
			if err := repos.Update(ctx, existing); err != nil {
				return created, updated, err
			}
			updated++
			continue
		}

		sample := sample
		if err := repos.Create(ctx, &sample); err != nil {
			return created, updated, err
		}
		created++
	}
	return created, updated, nil
}

// seedUsers registers the demo accounts, skipping ones that already exist.
func seedUsers(ctx context.Context, auth service.AuthService, samples []sampleUser) (int, error) {
	registered := 0
	for _, sample := range samples {
		if _, err := auth.Register(ctx, sample.name, sample.email, sample.password); err != nil {
			if errors.Is(err, apperrors.ErrEmailTaken) {
				continue
			}
			return registered, err
		}
		registered++
	}
	return registered, nil
}
