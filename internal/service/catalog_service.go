package service

import (
	"context"
	"errors"

	"github.com/warning2025/farmaciaposventas3/internal/model"
	"github.com/warning2025/farmaciaposventas3/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogService serves the lookup lists behind the product form.
type CatalogService struct {
	catalogs repository.CatalogRepository
}

func NewCatalogService(catalogs repository.CatalogRepository) *CatalogService {
	return &CatalogService{catalogs: catalogs}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]model.Category, error) {
	return s.catalogs.ListCategories(ctx)
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) (*model.Category, error) {
	c := &model.Category{Name: name}
	if err := s.catalogs.CreateCategory(ctx, c); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, validationErr("la categoría ya existe")
		}
		return nil, err
	}
	return c, nil
}

func (s *CatalogService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	err := s.catalogs.DeleteCategory(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func (s *CatalogService) ListPresentations(ctx context.Context) ([]model.Presentation, error) {
	return s.catalogs.ListPresentations(ctx)
}

func (s *CatalogService) CreatePresentation(ctx context.Context, name string) (*model.Presentation, error) {
	p := &model.Presentation{Name: name}
	if err := s.catalogs.CreatePresentation(ctx, p); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, validationErr("la presentación ya existe")
		}
		return nil, err
	}
	return p, nil
}

func (s *CatalogService) ListConcentrations(ctx context.Context) ([]model.Concentration, error) {
	return s.catalogs.ListConcentrations(ctx)
}

func (s *CatalogService) CreateConcentration(ctx context.Context, name string) (*model.Concentration, error) {
	c := &model.Concentration{Name: name}
	if err := s.catalogs.CreateConcentration(ctx, c); err != nil {
		if repository.IsUniqueViolation(err, "") {
			return nil, validationErr("la concentración ya existe")
		}
		return nil, err
	}
	return c, nil
}
