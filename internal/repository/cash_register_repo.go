package repository

import (
	"context"
	"time"

	"github.com/warning2025/farmaciaposventas3/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CashRegisterRepository interface {
	CreateSummaryTx(tx *gorm.DB, s *model.CashRegisterSummary) error
	FindSummaryByID(ctx context.Context, id uuid.UUID) (*model.CashRegisterSummary, error)
	FindSummaryByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.CashRegisterSummary, error)
	FindOpenByBranch(ctx context.Context, branchID uuid.UUID) (*model.CashRegisterSummary, error)
	// FindOpenByBranchForUpdateTx row-locks the open summary so concurrent
	// recorders serialize their total adjustments. gorm.ErrRecordNotFound
	// means no register is open for the branch.
	FindOpenByBranchForUpdateTx(tx *gorm.DB, branchID uuid.UUID) (*model.CashRegisterSummary, error)
	UpdateSummaryTx(tx *gorm.DB, s *model.CashRegisterSummary) error
	// ApplyTotalsTx increments the running totals atomically.
	ApplyTotalsTx(tx *gorm.DB, id uuid.UUID, incomeDelta, expenseDelta, balanceDelta decimal.Decimal) error

	CreateEntryTx(tx *gorm.DB, e *model.CashRegisterEntry) error
	ListEntriesSince(ctx context.Context, branchID uuid.UUID, since time.Time) ([]model.CashRegisterEntry, error)
	ListSummaries(ctx context.Context, page, limit int) ([]model.CashRegisterSummary, int64, error)
	ListSummariesRange(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.CashRegisterSummary, error)
	ListEntriesRange(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.CashRegisterEntry, error)

	DB() *gorm.DB
}

type cashRegisterRepo struct{ db *gorm.DB }

func NewCashRegisterRepository(db *gorm.DB) CashRegisterRepository { return &cashRegisterRepo{db: db} }

func (r *cashRegisterRepo) CreateSummaryTx(tx *gorm.DB, s *model.CashRegisterSummary) error {
	return tx.Create(s).Error
}

func (r *cashRegisterRepo) FindSummaryByID(ctx context.Context, id uuid.UUID) (*model.CashRegisterSummary, error) {
	var s model.CashRegisterSummary
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *cashRegisterRepo) FindSummaryByIDForUpdateTx(tx *gorm.DB, id uuid.UUID) (*model.CashRegisterSummary, error) {
	var s model.CashRegisterSummary
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&s, id).Error
	return &s, err
}

func (r *cashRegisterRepo) FindOpenByBranch(ctx context.Context, branchID uuid.UUID) (*model.CashRegisterSummary, error) {
	var s model.CashRegisterSummary
	err := r.db.WithContext(ctx).Where("branch_id = ? AND status = 'open'", branchID).First(&s).Error
	return &s, err
}

func (r *cashRegisterRepo) FindOpenByBranchForUpdateTx(tx *gorm.DB, branchID uuid.UUID) (*model.CashRegisterSummary, error) {
	var s model.CashRegisterSummary
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("branch_id = ? AND status = 'open'", branchID).First(&s).Error
	return &s, err
}

func (r *cashRegisterRepo) UpdateSummaryTx(tx *gorm.DB, s *model.CashRegisterSummary) error {
	return tx.Save(s).Error
}

func (r *cashRegisterRepo) ApplyTotalsTx(tx *gorm.DB, id uuid.UUID, incomeDelta, expenseDelta, balanceDelta decimal.Decimal) error {
	return tx.Model(&model.CashRegisterSummary{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_income":     gorm.Expr("total_income + ?", incomeDelta),
		"total_expense":    gorm.Expr("total_expense + ?", expenseDelta),
		"expected_balance": gorm.Expr("expected_balance + ?", balanceDelta),
	}).Error
}

func (r *cashRegisterRepo) CreateEntryTx(tx *gorm.DB, e *model.CashRegisterEntry) error {
	return tx.Create(e).Error
}

func (r *cashRegisterRepo) ListEntriesSince(ctx context.Context, branchID uuid.UUID, since time.Time) ([]model.CashRegisterEntry, error) {
	var entries []model.CashRegisterEntry
	err := r.db.WithContext(ctx).
		Where("branch_id = ? AND timestamp >= ?", branchID, since).
		Order("timestamp DESC").Find(&entries).Error
	return entries, err
}

func (r *cashRegisterRepo) ListSummaries(ctx context.Context, page, limit int) ([]model.CashRegisterSummary, int64, error) {
	var summaries []model.CashRegisterSummary
	var total int64
	q := r.db.WithContext(ctx).Model(&model.CashRegisterSummary{})
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("timestamp_open DESC").Offset((page - 1) * limit).Limit(limit).Find(&summaries).Error
	return summaries, total, err
}

func (r *cashRegisterRepo) ListSummariesRange(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.CashRegisterSummary, error) {
	var summaries []model.CashRegisterSummary
	q := r.db.WithContext(ctx).Where("timestamp_open BETWEEN ? AND ?", start, end)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	err := q.Order("timestamp_open DESC").Find(&summaries).Error
	return summaries, err
}

func (r *cashRegisterRepo) ListEntriesRange(ctx context.Context, start, end time.Time, branchID *uuid.UUID) ([]model.CashRegisterEntry, error) {
	var entries []model.CashRegisterEntry
	q := r.db.WithContext(ctx).Where("timestamp BETWEEN ? AND ?", start, end)
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	err := q.Order("timestamp DESC").Find(&entries).Error
	return entries, err
}

func (r *cashRegisterRepo) DB() *gorm.DB { return r.db }
