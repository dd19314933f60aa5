package service

import (
	"context"
	"fmt"

	"onboardo/internal/model"
	"onboardo/internal/repository"
)

// FavoriteService manages a user's favorited repositories.
type FavoriteService interface {
	List(ctx context.Context, userID uint) ([]model.Repository, error)
	Add(ctx context.Context, userID, repositoryID uint) (*model.Repository, error)
}

type favoriteService struct {
	repos     RepositoryService
	favorites repository.FavoriteRepository
}

// NewFavoriteService creates a new favorites service.
func NewFavoriteService(repos RepositoryService, favorites repository.FavoriteRepository) FavoriteService {
	return &favoriteService{repos: repos, favorites: favorites}
}

func (s *favoriteService) List(ctx context.Context, userID uint) ([]model.Repository, error) {
	repos, err := s.favorites.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites for user %d: %w", userID, err)
	}
	return repos, nil
}

// Add favorites the repository for the user. The repository must exist;
// a repeated add for the same pair is a no-op (set membership).
func (s *favoriteService) Add(ctx context.Context, userID, repositoryID uint) (*model.Repository, error) {
	repo, err := s.repos.Get(ctx, repositoryID)
	if err != nil {
		return nil, err
	}
	if err := s.favorites.Add(ctx, userID, repo); err != nil {
		logger.Error().Err(err).Uint("user_id", userID).Uint("repository_id", repositoryID).Msg("Error adding favorite")
		return nil, fmt.Errorf("add favorite: %w", err)
	}
	return repo, nil
}
