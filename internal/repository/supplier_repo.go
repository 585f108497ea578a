package repository

import (
	"context"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SupplierRepository covers suppliers and their purchase ledger.
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Supplier, error)
	CreatePurchaseTx(tx *gorm.DB, p *model.Purchase) error
	FindPurchaseByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error)
	FindPurchaseByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Purchase, error)
	UpdatePurchaseFieldsTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	DeletePurchaseTx(tx *gorm.DB, id uuid.UUID) error
	ListPurchases(ctx context.Context, supplierID *uuid.UUID) ([]model.Purchase, error)
	ListPurchasesRange(ctx context.Context, start, end time.Time) ([]model.Purchase, error)

	DB() *gorm.DB
}

type supplierRepo struct{ db *gorm.DB }

func NewSupplierRepository(db *gorm.DB) SupplierRepository { return &supplierRepo{db: db} }

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	var suppliers []model.Supplier
	err := r.db.WithContext(ctx).Order("name ASC").Find(&suppliers).Error
	return suppliers, err
}

func (r *supplierRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Supplier{}).Where("id = ?", id).Updates(fields).Error
}

func (r *supplierRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Supplier{}, id).Error
}

func (r *supplierRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Supplier, error) {
	var s model.Supplier
	err := tx.First(&s, id).Error
	return &s, err
}

func (r *supplierRepo) CreatePurchaseTx(tx *gorm.DB, p *model.Purchase) error {
	return tx.Create(p).Error
}

func (r *supplierRepo) FindPurchaseByID(ctx context.Context, id uuid.UUID) (*model.Purchase, error) {
	var p model.Purchase
	err := r.db.WithContext(ctx).Preload("Supplier").First(&p, id).Error
	return &p, err
}

func (r *supplierRepo) FindPurchaseByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Purchase, error) {
	var p model.Purchase
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	return &p, err
}

func (r *supplierRepo) UpdatePurchaseFieldsTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return tx.Model(&model.Purchase{}).Where("id = ?", id).Updates(fields).Error
}

func (r *supplierRepo) DeletePurchaseTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Purchase{}, id).Error
}

func (r *supplierRepo) ListPurchases(ctx context.Context, supplierID *uuid.UUID) ([]model.Purchase, error) {
	var purchases []model.Purchase
	q := r.db.WithContext(ctx).Preload("Supplier")
	if supplierID != nil {
		q = q.Where("supplier_id = ?", *supplierID)
	}
	err := q.Order("timestamp DESC").Find(&purchases).Error
	return purchases, err
}

func (r *supplierRepo) ListPurchasesRange(ctx context.Context, start, end time.Time) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.WithContext(ctx).Preload("Supplier").
		Where("timestamp BETWEEN ? AND ?", start, end).
		Order("timestamp DESC").Find(&purchases).Error
	return purchases, err
}

func (r *supplierRepo) DB() *gorm.DB { return r.db }
