package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"onboardo/internal/model"
)

// RepositoryRepository defines catalog persistence operations.
type RepositoryRepository interface {
	Create(ctx context.Context, repo *model.Repository) error
	Update(ctx context.Context, repo *model.Repository) error
	FindByID(ctx context.Context, id uint) (*model.Repository, error)
	FindByName(ctx context.Context, name string) (*model.Repository, error)
	List(ctx context.Context) ([]model.Repository, error)
	Delete(ctx context.Context, repo *model.Repository) error
}

type repositoryRepository struct {
	db *gorm.DB
}

// NewRepositoryRepository builds a GORM-backed repository.
func NewRepositoryRepository(db *gorm.DB) RepositoryRepository {
	return &repositoryRepository{db: db}
}

func (r *repositoryRepository) Create(ctx context.Context, repo *model.Repository) error {
	return r.db.WithContext(ctx).Create(repo).Error
}

func (r *repositoryRepository) Update(ctx context.Context, repo *model.Repository) error {
	return r.db.WithContext(ctx).Save(repo).Error
}

func (r *repositoryRepository) FindByID(ctx context.Context, id uint) (*model.Repository, error) {
	var repo model.Repository
	if err := r.db.WithContext(ctx).First(&repo, id).Error; err != nil {
		return nil, err
	}
	return &repo, nil
}

func (r *repositoryRepository) FindByName(ctx context.Context, name string) (*model.Repository, error) {
	var repo model.Repository
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&repo).Error; err != nil {
		return nil, err
	}
	return &repo, nil
}

func (r *repositoryRepository) List(ctx context.Context) ([]model.Repository, error) {
	var repos []model.Repository
	if err := r.db.WithContext(ctx).Find(&repos).Error; err != nil {
		return nil, err
	}
	return repos, nil
}

// Delete removes the row and its favorite associations.
func (r *repositoryRepository) Delete(ctx context.Context, repo *model.Repository) error {
	return r.db.WithContext(ctx).Select(clause.Associations).Delete(repo).Error
}
