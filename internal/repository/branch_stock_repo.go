package repository

import (
	"context"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BranchStockRepository interface {
	// FindForUpdateTx row-locks the (branch, product) row inside a transfer
	// transaction. gorm.ErrRecordNotFound means no row exists yet.
	FindForUpdateTx(tx *gorm.DB, branchID, productID uuid.UUID) (*model.BranchStock, error)
	CreateTx(tx *gorm.DB, bs *model.BranchStock) error
	AddStockTx(tx *gorm.DB, id uuid.UUID, delta int) error
	ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.BranchStock, error)
	ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.BranchStock, error)
}

type branchStockRepo struct{ db *gorm.DB }

func NewBranchStockRepository(db *gorm.DB) BranchStockRepository { return &branchStockRepo{db: db} }

func (r *branchStockRepo) FindForUpdateTx(tx *gorm.DB, branchID, productID uuid.UUID) (*model.BranchStock, error) {
	var bs model.BranchStock
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("branch_id = ? AND product_id = ?", branchID, productID).First(&bs).Error
	return &bs, err
}

func (r *branchStockRepo) CreateTx(tx *gorm.DB, bs *model.BranchStock) error {
	return tx.Create(bs).Error
}

func (r *branchStockRepo) AddStockTx(tx *gorm.DB, id uuid.UUID, delta int) error {
	return tx.Model(&model.BranchStock{}).Where("id = ?", id).
		Update("current_stock", gorm.Expr("current_stock + ?", delta)).Error
}

func (r *branchStockRepo) ListByBranch(ctx context.Context, branchID uuid.UUID) ([]model.BranchStock, error) {
	var rows []model.BranchStock
	err := r.db.WithContext(ctx).Preload("Product").Where("branch_id = ?", branchID).Find(&rows).Error
	return rows, err
}

func (r *branchStockRepo) ListByProduct(ctx context.Context, productID uuid.UUID) ([]model.BranchStock, error) {
	var rows []model.BranchStock
	err := r.db.WithContext(ctx).Where("product_id = ?", productID).Find(&rows).Error
	return rows, err
}
