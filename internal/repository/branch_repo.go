package repository

import (
	"context"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BranchRepository interface {
	CreateTx(tx *gorm.DB, b *model.Branch) error
	CountTx(tx *gorm.DB) (int64, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error)
	FindMain(ctx context.Context) (*model.Branch, error)
	FindFirstCreated(ctx context.Context) (*model.Branch, error)
	List(ctx context.Context) ([]model.Branch, error)
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	DeleteTx(tx *gorm.DB, id uuid.UUID) error
	// ClearMainTx / SetMainTx implement the single-designation promotion.
	ClearMainTx(tx *gorm.DB) error
	SetMainTx(tx *gorm.DB, id uuid.UUID) error
	// Guards for deletion: a branch with open sessions or local stock cannot go.
	CountOpenSessionsTx(tx *gorm.DB, branchID uuid.UUID) (int64, error)
	CountBranchStockTx(tx *gorm.DB, branchID uuid.UUID) (int64, error)

	FindCodeForUpdateTx(tx *gorm.DB, code string) (*model.ActivationCode, error)
	CreateCode(ctx context.Context, c *model.ActivationCode) error
	SetCodeUsedTx(tx *gorm.DB, id uuid.UUID, used bool) error

	DB() *gorm.DB
}

type branchRepo struct{ db *gorm.DB }

func NewBranchRepository(db *gorm.DB) BranchRepository { return &branchRepo{db: db} }

func (r *branchRepo) CreateTx(tx *gorm.DB, b *model.Branch) error {
	return tx.Create(b).Error
}

func (r *branchRepo) CountTx(tx *gorm.DB) (int64, error) {
	var n int64
	err := tx.Model(&model.Branch{}).Count(&n).Error
	return n, err
}

func (r *branchRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Branch, error) {
	var b model.Branch
	err := r.db.WithContext(ctx).First(&b, id).Error
	return &b, err
}

func (r *branchRepo) FindMain(ctx context.Context) (*model.Branch, error) {
	var b model.Branch
	err := r.db.WithContext(ctx).Where("is_main = true").First(&b).Error
	return &b, err
}

func (r *branchRepo) FindFirstCreated(ctx context.Context) (*model.Branch, error) {
	var b model.Branch
	err := r.db.WithContext(ctx).Order("created_at ASC").First(&b).Error
	return &b, err
}

func (r *branchRepo) List(ctx context.Context) ([]model.Branch, error) {
	var branches []model.Branch
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&branches).Error
	return branches, err
}

func (r *branchRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Branch{}).Where("id = ?", id).Updates(fields).Error
}

func (r *branchRepo) DeleteTx(tx *gorm.DB, id uuid.UUID) error {
	return tx.Delete(&model.Branch{}, id).Error
}

func (r *branchRepo) ClearMainTx(tx *gorm.DB) error {
	return tx.Model(&model.Branch{}).Where("is_main = true").Update("is_main", false).Error
}

func (r *branchRepo) SetMainTx(tx *gorm.DB, id uuid.UUID) error {
	res := tx.Model(&model.Branch{}).Where("id = ?", id).Update("is_main", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *branchRepo) CountOpenSessionsTx(tx *gorm.DB, branchID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.CashRegisterSummary{}).
		Where("branch_id = ? AND status = 'open'", branchID).Count(&n).Error
	return n, err
}

func (r *branchRepo) CountBranchStockTx(tx *gorm.DB, branchID uuid.UUID) (int64, error) {
	var n int64
	err := tx.Model(&model.BranchStock{}).Where("branch_id = ?", branchID).Count(&n).Error
	return n, err
}

func (r *branchRepo) FindCodeForUpdateTx(tx *gorm.DB, code string) (*model.ActivationCode, error) {
	var c model.ActivationCode
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("code = ?", code).First(&c).Error
	return &c, err
}

func (r *branchRepo) CreateCode(ctx context.Context, c *model.ActivationCode) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *branchRepo) SetCodeUsedTx(tx *gorm.DB, id uuid.UUID, used bool) error {
	return tx.Model(&model.ActivationCode{}).Where("id = ?", id).Update("used", used).Error
}

func (r *branchRepo) DB() *gorm.DB { return r.db }
