package repository

import (
	"context"

	"gorm.io/gorm"

	"onboardo/internal/model"
)

// FavoriteRepository manages the repository_user association.
type FavoriteRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]model.Repository, error)
	Add(ctx context.Context, userID uint, repo *model.Repository) error
}

type favoriteRepository struct {
	db *gorm.DB
}

// NewFavoriteRepository builds a GORM-backed repository.
func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]model.Repository, error) {
	user := model.User{ID: userID}
	var repos []model.Repository
	if err := r.db.WithContext(ctx).Model(&user).Association("Favorites").Find(&repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// Add attaches repo to the user's favorites. The join table carries a
// composite primary key, so attaching the same pair twice leaves one row.
func (r *favoriteRepository) Add(ctx context.Context, userID uint, repo *model.Repository) error {
	user := model.User{ID: userID}
	return r.db.WithContext(ctx).Model(&user).Association("Favorites").Append(repo)
}
