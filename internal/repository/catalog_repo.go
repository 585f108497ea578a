package repository

import (
	"context"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogRepository serves the small lookup catalogs behind the product form.
type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, c *model.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListPresentations(ctx context.Context) ([]model.Presentation, error)
	CreatePresentation(ctx context.Context, p *model.Presentation) error
	ListConcentrations(ctx context.Context) ([]model.Concentration, error)
	CreateConcentration(ctx context.Context, c *model.Concentration) error
}

type catalogRepo struct{ db *gorm.DB }

func NewCatalogRepository(db *gorm.DB) CatalogRepository { return &catalogRepo{db: db} }

func (r *catalogRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	var rows []model.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogRepo) CreateCategory(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *catalogRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Category{}, id).Error
}

func (r *catalogRepo) ListPresentations(ctx context.Context) ([]model.Presentation, error) {
	var rows []model.Presentation
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogRepo) CreatePresentation(ctx context.Context, p *model.Presentation) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *catalogRepo) ListConcentrations(ctx context.Context) ([]model.Concentration, error) {
	var rows []model.Concentration
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *catalogRepo) CreateConcentration(ctx context.Context, c *model.Concentration) error {
	return r.db.WithContext(ctx).Create(c).Error
}
