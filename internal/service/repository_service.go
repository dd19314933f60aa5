package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "onboardo/internal/errors"
	"onboardo/internal/model"
	"onboardo/internal/repository"
)

// RepositoryInput is the allow-list of writable repository fields. It is
// built only from validated form values, so nothing outside these four
// fields can reach storage.
type RepositoryInput struct {
	Name        string
	URL         string
	Description string
	Guide       string
}

// RepositoryService handles catalog CRUD.
type RepositoryService interface {
	List(ctx context.Context) ([]model.Repository, error)
	Get(ctx context.Context, id uint) (*model.Repository, error)
	Create(ctx context.Context, input RepositoryInput) (*model.Repository, error)
	Update(ctx context.Context, id uint, input RepositoryInput) (*model.Repository, error)
	Delete(ctx context.Context, id uint) error
}

type repositoryService struct {
	repos repository.RepositoryRepository
}

// NewRepositoryService creates a new catalog service.
func NewRepositoryService(repos repository.RepositoryRepository) RepositoryService {
	return &repositoryService{repos: repos}
}

func (s *repositoryService) List(ctx context.Context) ([]model.Repository, error) {
	repos, err := s.repos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}
	return repos, nil
}

func (s *repositoryService) Get(ctx context.Context, id uint) (*model.Repository, error) {
	repo, err := s.repos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRepositoryNotFound
		}
		return nil, fmt.Errorf("find repository %d: %w", id, err)
	}
	return repo, nil
}

func (s *repositoryService) Create(ctx context.Context, input RepositoryInput) (*model.Repository, error) {
	repo := &model.Repository{
		Name:        input.Name,
		URL:         input.URL,
		Description: input.Description,
		Guide:       input.Guide,
	}
	if err := s.repos.Create(ctx, repo); err != nil {
		logger.Error().Err(err).Msg("Error creating repository")
		return nil, fmt.Errorf("create repository: %w", err)
	}
	return repo, nil
}

// Update overwrites only the allow-listed fields on the existing row.
func (s *repositoryService) Update(ctx context.Context, id uint, input RepositoryInput) (*model.Repository, error) {
	repo, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	repo.Name = input.Name
	repo.URL = input.URL
	repo.Description = input.Description
	repo.Guide = input.Guide
	if err := s.repos.Update(ctx, repo); err != nil {
		logger.Error().Err(err).Uint("repository_id", id).Msg("Error updating repository")
		return nil, fmt.Errorf("update repository %d: %w", id, err)
	}
	return repo, nil
}

// Delete hard-deletes the row. There is no soft-delete or tombstone.
func (s *repositoryService) Delete(ctx context.Context, id uint) error {
	repo, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repos.Delete(ctx, repo); err != nil {
		logger.Error().Err(err).Uint("repository_id", id).Msg("Error deleting repository")
		return fmt.Errorf("delete repository %d: %w", id, err)
	}
	return nil
}
