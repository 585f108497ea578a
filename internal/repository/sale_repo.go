package repository

import (
	"context"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SaleRepository interface {
	CreateTx(tx *gorm.DB, s *model.Sale) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error)
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Sale, error)
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error
	List(ctx context.Context, branchID *uuid.UUID) ([]model.Sale, error)
	ListRange(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.Sale, error)
	DB() *gorm.DB
}

type saleRepo struct{ db *gorm.DB }

func NewSaleRepository(db *gorm.DB) SaleRepository { return &saleRepo{db: db} }

func (r *saleRepo) CreateTx(tx *gorm.DB, s *model.Sale) error {
	return tx.Create(s).Error
}

func (r *saleRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	err := r.db.WithContext(ctx).Preload("Items").First(&s, id).Error
	return &s, err
}

func (r *saleRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Sale, error) {
	var s model.Sale
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, id).Error; err != nil {
		return nil, err
	}
	err := tx.Where("sale_id = ?", id).Find(&s.Items).Error
	return &s, err
}

func (r *saleRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	if err := tx.Where("sale_id = ?", id).Delete(&model.SaleItem{}).Error; err != nil {
		return err
	}
	return tx.Delete(&model.Sale{}, id).Error
}

func (r *saleRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, status string) error {
	return tx.Model(&model.Sale{}).Where("id = ?", id).Update("status", status).Error
}

func (r *saleRepo) List(ctx context.Context, branchID *uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	q := r.db.WithContext(ctx).Preload("Items")
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	err := q.Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) ListRange(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.Sale, error) {
	var sales []model.Sale
	q := r.db.WithContext(ctx).Preload("Items").Where("date BETWEEN ? AND ?", start, end)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	err := q.Order("date DESC").Find(&sales).Error
	return sales, err
}

func (r *saleRepo) DB() *gorm.DB { return r.db }
