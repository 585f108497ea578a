package repository

import (
	"context"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRepository defines the data access contract for the catalog.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling unit testing via in-memory fakes. *Tx methods participate in a
// caller-owned transaction and must receive the live tx handle.
type ProductRepository interface {
	Create(ctx context.Context, p *model.Product) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error)
	FindByBarcode(ctx context.Context, barcode string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	ListWithMinStock(ctx context.Context) ([]model.Product, error)
	ListOrphans(ctx context.Context) ([]model.Product, error)
	ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.Product, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByIDForUpdateTx row-locks the product; recorder transactions read
	// every referenced product through this before writing anything.
	FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Product, error)
	UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error
	AssignBranchTx(tx *gorm.DB, id, branchID uuid.UUID) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type productRepo struct{ db *gorm.DB }

func NewProductRepository(db *gorm.DB) ProductRepository { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *model.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productRepo) FindByBarcode(ctx context.Context, barcode string) (*model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).Where("barcode = ?", barcode).First(&p).Error
	return &p, err
}

func (r *productRepo) List(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Order("commercial_name ASC").Find(&products).Error
	return products, err
}

// ListWithMinStock returns the low-stock candidates (min_stock > 0); the
// current<=min comparison happens in the service because it compares two
// columns — fine at pharmacy scale.
func (r *productRepo) ListWithMinStock(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("min_stock > 0").Find(&products).Error
	return products, err
}

func (r *productRepo) ListOrphans(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("branch_id IS NULL").Find(&products).Error
	return products, err
}

func (r *productRepo) ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).Where("branch_id = ?", branchID).Order("commercial_name ASC").Find(&products).Error
	return products, err
}

func (r *productRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", id).Updates(fields).Error
}

func (r *productRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}

func (r *productRepo) FindByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.Product, error) {
	var p model.Product
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&p, id).Error
	return &p, err
}

func (r *productRepo) UpdateStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.Product{}).Where("id = ?", id).
		Update("current_stock", gorm.Expr("current_stock + ?", delta)).Error
}

func (r *productRepo) AssignBranchTx(tx *gorm.DB, id, branchID uuid.UUID) error {
	return tx.Model(&model.Product{}).Where("id = ?", id).Update("branch_id", branchID).Error
}

func (r *productRepo) DB() *gorm.DB { return r.db }
